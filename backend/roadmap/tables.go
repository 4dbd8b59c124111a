package roadmap

// technology is one row of the detection table. A technology is detected when
// an alias matches a goals token in either substring direction ("react" must
// match "reactjs" and vice versa); related terms alone yield a
// medium-confidence hit.
type technology struct {
	name     string
	category string
	aliases  []string
	related  []string
}

var technologyTable = []technology{
	{name: "react", category: "frontend framework", aliases: []string{"react", "reactjs", "react.js"}, related: []string{"jsx", "hooks", "redux", "next"}},
	{name: "vue", category: "frontend framework", aliases: []string{"vue", "vuejs", "vue.js"}, related: []string{"vuex", "nuxt"}},
	{name: "angular", category: "frontend framework", aliases: []string{"angular", "angularjs"}, related: []string{"rxjs", "ngrx"}},
	{name: "javascript", category: "language", aliases: []string{"javascript", "js", "es6"}, related: []string{"dom", "async", "promises"}},
	{name: "typescript", category: "language", aliases: []string{"typescript", "ts"}, related: []string{"types", "generics"}},
	{name: "html", category: "markup", aliases: []string{"html", "html5"}, related: []string{"semantic", "accessibility"}},
	{name: "css", category: "styling", aliases: []string{"css", "css3", "sass", "scss", "tailwind"}, related: []string{"flexbox", "grid", "responsive"}},
	{name: "node.js", category: "backend runtime", aliases: []string{"node", "nodejs", "node.js"}, related: []string{"express", "npm", "rest"}},
	{name: "python", category: "language", aliases: []string{"python", "py"}, related: []string{"django", "flask", "pandas"}},
	{name: "java", category: "language", aliases: []string{"java"}, related: []string{"spring", "maven"}},
	{name: "mongodb", category: "database", aliases: []string{"mongo", "mongodb"}, related: []string{"mongoose", "nosql"}},
	{name: "sql", category: "database", aliases: []string{"sql", "postgres", "postgresql", "mysql", "sqlite"}, related: []string{"queries", "joins", "schema"}},
	{name: "docker", category: "devops", aliases: []string{"docker", "container"}, related: []string{"compose", "kubernetes"}},
	{name: "aws", category: "cloud", aliases: []string{"aws", "amazon"}, related: []string{"ec2", "s3", "lambda"}},
}

// problemCategory maps trouble keywords found anywhere in the goals text to
// the topics addressing them. Table order is output order; topics repeated
// across categories are kept as-is.
type problemCategory struct {
	aliases []string
	topics  []string
}

var problemCategories = []problemCategory{
	{
		aliases: []string{"responsive", "media quer", "mobile"},
		topics: []string{
			"Practice responsive layouts with flexbox and grid",
			"Study mobile-first design and common breakpoints",
		},
	},
	{
		aliases: []string{"layout", "position", "center", "align"},
		topics: []string{
			"Master CSS positioning and stacking contexts",
			"Rebuild common page layouts from scratch",
		},
	},
	{
		aliases: []string{"javascript", "undefined", "async", "callback", "promise"},
		topics: []string{
			"Work through asynchronous JavaScript (callbacks, promises, async/await)",
			"Practice reading stack traces and narrowing down errors",
		},
	},
	{
		aliases: []string{"api", "fetch", "request", "endpoint"},
		topics: []string{
			"Practice consuming REST APIs and handling failures",
			"Study HTTP methods, status codes and headers",
		},
	},
	{
		aliases: []string{"performance", "slow", "optimiz"},
		topics: []string{
			"Profile and optimize page load performance",
			"Study caching, lazy loading and bundle size budgets",
		},
	},
	{
		aliases: []string{"debug", "bug", "error"},
		topics: []string{
			"Practice systematic debugging with browser devtools",
			"Write small reproductions before fixing anything",
		},
	},
}

// keywordRule is one stack-detection check: term must appear in the goals
// text, and when unless is set the rule only fires if unless does NOT also
// appear ("java" must not fire on "javascript").
type keywordRule struct {
	term   string
	unless string
}

var frontendRules = []keywordRule{
	{term: "react"}, {term: "vue"}, {term: "angular"},
	{term: "frontend"}, {term: "front-end"}, {term: "front end"},
	{term: "html"}, {term: "css"}, {term: "tailwind"}, {term: "layout"},
}

var backendRules = []keywordRule{
	{term: "node"}, {term: "express"}, {term: "backend"}, {term: "back-end"},
	{term: "back end"}, {term: "api"}, {term: "server"}, {term: "django"},
	{term: "flask"}, {term: "spring"}, {term: "java", unless: "javascript"},
}

var databaseRules = []keywordRule{
	{term: "mongo"}, {term: "sql"}, {term: "postgres"}, {term: "database"}, {term: "nosql"},
}

var devopsRules = []keywordRule{
	{term: "deploy"}, {term: "hosting"}, {term: "production"}, {term: "docker"},
	{term: "aws"}, {term: "cloud"}, {term: "vercel"}, {term: "netlify"}, {term: "heroku"},
}

var testingRules = []keywordRule{
	{term: "test"}, {term: "jest"}, {term: "tdd"}, {term: "cypress"},
}

// frameworkSteps appends concrete learning steps when the goals mention a
// stack. allOf terms must all appear; noneOf terms must not.
type frameworkSteps struct {
	allOf  []string
	noneOf []string
	steps  []string
}

var frameworkTable = []frameworkSteps{
	{
		allOf: []string{"react"},
		steps: []string{
			"Build components with React hooks (useState, useEffect)",
			"Manage shared state with context or a state library",
			"Practice component composition and prop design",
		},
	},
	{
		allOf: []string{"react", "typescript"},
		steps: []string{
			"Set up a React + TypeScript project with Vite",
			"Type component props, state and event handlers",
			"Use generics and utility types in React code",
		},
	},
	{
		allOf: []string{"vue"},
		steps: []string{
			"Build single-file components with the Composition API",
			"Manage state with Pinia",
		},
	},
	{
		allOf: []string{"node"},
		steps: []string{
			"Build a REST API with Express and middleware",
			"Handle validation, errors and logging server-side",
		},
	},
	{
		allOf: []string{"mongo"},
		steps: []string{
			"Model data with Mongoose schemas",
			"Practice queries, indexes and aggregation pipelines",
		},
	},
	{
		allOf: []string{"sql"},
		steps: []string{
			"Design relational schemas and practice joins",
			"Write migrations and seed scripts",
		},
	},
	{
		allOf:  []string{"java"},
		noneOf: []string{"javascript"},
		steps: []string{
			"Build services with Spring Boot",
			"Practice dependency injection and layered design",
		},
	},
	{
		allOf: []string{"python"},
		steps: []string{
			"Build an API with Flask or FastAPI",
			"Practice virtual environments and packaging",
		},
	},
}

// weeksByTimeBudget maps the weekly time budget to a plan length in weeks.
var weeksByTimeBudget = map[string]int{
	"5-10 hours":  8,
	"10-15 hours": 12,
	"15-20 hours": 16,
	"20+ hours":   20,
}

const defaultWeeks = 12

var beginnerFoundationSteps = []string{
	"HTML & CSS fundamentals",
	"JavaScript basics and simple projects",
}

var reviewFundamentalsStep = "Review fundamentals and identify weak areas"

var architectureSteps = []string{
	"Study software architecture patterns (MVC, layered, microservices)",
	"Set up CI/CD pipelines for your projects",
	"Practice code reviews and git workflows",
}

var expertSteps = []string{
	"Master system design and scalability trade-offs",
	"Master performance profiling and optimization",
	"Contribute to an open source project in your stack",
}

var databaseSteps = []string{
	"Practice data modeling for your application's domain",
	"Learn when to reach for SQL versus a document store",
}

var testingSteps = []string{
	"Write unit tests for your core logic",
	"Add an end-to-end test for the main user flow",
}

var projectBreakdownSteps = []string{
	"Plan the features and user flows",
	"Design the data model and API surface",
	"Implement the core functionality first",
	"Polish the UI and handle edge cases",
	"Deploy it and gather feedback",
}

var careerSteps = []string{
	"Build a portfolio website showcasing your best projects",
	"Polish your GitHub profile with pinned repositories",
	"Practice technical interview questions daily",
	"Write a developer resume highlighting real projects",
}

var freelanceSteps = []string{
	"Create profiles on freelance platforms with a clear niche",
	"Prepare a portfolio of small, finished client-style projects",
	"Practice scoping and estimating small projects",
	"Learn the basics of contracts and invoicing",
}

// advancedFillers pad an advanced path that the fundamentals filter has cut
// below five steps, keyed by focus area (FocusWeb is the fallback).
var advancedFillers = map[string][]string{
	FocusFrontend: {
		"Master advanced component patterns (render props, compound components)",
		"Master rendering performance and memoization",
		"Master accessibility and internationalization",
		"Master build tooling and bundler configuration",
		"Master design systems and component libraries",
	},
	FocusBackend: {
		"Master database indexing and query optimization",
		"Master distributed systems basics (queues, caching, idempotency)",
		"Master observability (structured logs, metrics, tracing)",
		"Master API versioning and contract design",
		"Master authentication and authorization patterns",
	},
	FocusWeb: {
		"Master full-stack application architecture",
		"Master API design end to end",
		"Master testing strategy across the stack",
		"Master deployment and infrastructure basics",
		"Master security fundamentals (OWASP top 10)",
	},
}

var tipsByLevel = map[string][]string{
	LevelBeginner: {
		"Code a little every day; consistency beats marathon sessions",
		"Type out examples yourself instead of copy-pasting",
		"Build tiny projects as soon as you learn something new",
	},
	LevelIntermediate: {
		"Read other people's code to pick up patterns",
		"Rebuild a past project and compare your old approach",
		"Start writing tests before you think you need them",
	},
	LevelAdvanced: {
		"Teach what you learn; writing and mentoring expose gaps",
		"Go deep on one stack instead of wide on five",
		"Measure before optimizing anything",
	},
}

var careerTips = []string{
	"Tailor your portfolio to the jobs you actually want",
	"Do mock interviews with a timer and a whiteboard",
}

var freelanceTips = []string{
	"Niche down: one audience, one problem, one offer",
	"Overcommunicate with clients; it is most of the job",
}
