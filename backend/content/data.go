package content

var roadmapOrder = []string{"python", "javascript"}

var roadmaps = map[string]LanguageRoadmap{
	"python": {
		Language:    "python",
		Title:       "Python Complete Learning Path",
		Description: "Master Python from basics to advanced concepts with practical examples",
		Sections: []Section{
			{
				ID:         "intro",
				Phase:      "Phase 1: Foundations",
				Title:      "1. Introduction & Setup",
				Duration:   "1-2 days",
				Difficulty: "Beginner",
				Topics: []Topic{
					{
						Name:    "Why Python & Use-cases",
						Content: "High-level, readable language used in web, data science, automation and AI. Fast to prototype and has a rich ecosystem.",
						Example: `print("Hello, Python!")`,
					},
					{
						Name:    "Install & Virtual Envs",
						Content: "Install Python 3.11+, use venv or pipenv/poetry for reproducible environments.",
						Example: "python -m venv .venv\nsource .venv/bin/activate\npip install -r requirements.txt",
					},
				},
			},
			{
				ID:         "basics",
				Phase:      "Phase 1: Foundations",
				Title:      "2. Syntax, Types & Control Flow",
				Duration:   "3-5 days",
				Difficulty: "Beginner",
				Topics: []Topic{
					{Name: "Variables & Data Types", Content: "int, float, str, bool, list, tuple, dict, set", Example: "a = 10\nname = \"Alice\""},
					{Name: "If / Loops / Comprehensions", Content: "Control flow and comprehension patterns", Example: "for i in range(5): print(i)"},
				},
			},
			{
				ID:         "functions",
				Phase:      "Phase 2: Core",
				Title:      "3. Functions & Modules",
				Duration:   "3-4 days",
				Difficulty: "Intermediate",
				Topics: []Topic{
					{Name: "Defining functions", Content: "parameters, return values, *args/**kwargs", Example: "def add(a, b=0): return a + b"},
					{Name: "Modules & Packages", Content: "Organize code into modules, __main__ pattern, packaging basics", Example: "from mypkg.utils import helper"},
				},
			},
			{
				ID:         "oop",
				Phase:      "Phase 3: Applied",
				Title:      "4. OOP, Design & Patterns",
				Duration:   "4-6 days",
				Difficulty: "Intermediate",
				Topics: []Topic{
					{Name: "Classes & Inheritance", Content: "Design classes, properties, dunder methods", Example: "class User: pass"},
					{Name: "Design Patterns", Content: "Strategy, Factory, Adapter in practical use"},
				},
			},
			{
				ID:         "async",
				Phase:      "Phase 4: Advanced",
				Title:      "5. Async, Web & Services",
				Duration:   "5-8 days",
				Difficulty: "Advanced",
				Topics: []Topic{
					{Name: "asyncio & concurrency", Content: "async/await, event loop, threads vs processes", Example: "asyncio.run(main())"},
					{Name: "Web frameworks", Content: "Flask, FastAPI, Django basics and building APIs", Example: "from fastapi import FastAPI"},
				},
			},
		},
	},
	"javascript": {
		Language:    "javascript",
		Title:       "JavaScript Complete Learning Path",
		Description: "From the language core to the browser and Node.js",
		Sections: []Section{
			{
				ID:         "intro",
				Phase:      "Phase 1: Foundations",
				Title:      "1. Language Basics",
				Duration:   "3-5 days",
				Difficulty: "Beginner",
				Topics: []Topic{
					{Name: "Values & Types", Content: "number, string, boolean, null/undefined, objects, arrays", Example: "const n = 42;"},
					{Name: "Functions & Scope", Content: "declarations, arrows, closures, hoisting", Example: "const add = (a, b) => a + b;"},
				},
			},
			{
				ID:         "dom",
				Phase:      "Phase 2: Browser",
				Title:      "2. The DOM & Events",
				Duration:   "4-6 days",
				Difficulty: "Beginner",
				Topics: []Topic{
					{Name: "Selecting & Updating Nodes", Content: "querySelector, classList, dataset", Example: "document.querySelector('#app')"},
					{Name: "Event Handling", Content: "bubbling, delegation, default actions", Example: "btn.addEventListener('click', onClick)"},
				},
			},
			{
				ID:         "async",
				Phase:      "Phase 3: Core",
				Title:      "3. Asynchronous JavaScript",
				Duration:   "5-7 days",
				Difficulty: "Intermediate",
				Topics: []Topic{
					{Name: "Promises & async/await", Content: "chaining, error handling, concurrency with Promise.all", Example: "const data = await fetch(url).then(r => r.json());"},
					{Name: "The Event Loop", Content: "tasks, microtasks, why setTimeout(0) is not immediate"},
				},
			},
			{
				ID:         "node",
				Phase:      "Phase 4: Server",
				Title:      "4. Node.js & APIs",
				Duration:   "6-8 days",
				Difficulty: "Advanced",
				Topics: []Topic{
					{Name: "Modules & npm", Content: "CommonJS vs ESM, package.json, semver", Example: "import express from 'express';"},
					{Name: "Building REST APIs", Content: "routing, middleware, validation, error handling", Example: "app.get('/users', listUsers)"},
				},
			},
		},
	},
}

var practiceQuestions = map[string]map[string]Questions{
	"python": {
		"intro": {
			MCQs: []MCQ{
				{
					Question:      "What type of programming language is Python?",
					Options:       []string{"Compiled, low-level", "Interpreted, high-level", "Assembly language", "Machine language"},
					CorrectAnswer: 1,
					Explanation:   "Python is an interpreted, high-level programming language known for its simplicity and readability.",
				},
				{
					Question:      "What is the correct file extension for Python files?",
					Options:       []string{".pt", ".py", ".python", ".pyt"},
					CorrectAnswer: 1,
					Explanation:   "Python files use the .py extension.",
				},
			},
			Coding: []CodingTask{
				{
					Question: `Write a program that prints "Hello, Python!" to the console.`,
					Hint:     "Use the print() function",
					Solution: `print("Hello, Python!")`,
					Language: "python",
				},
			},
		},
		"basics": {
			MCQs: []MCQ{
				{
					Question:      "Which symbol is used for single-line comments in Python?",
					Options:       []string{"//", "/* */", "#", "--"},
					CorrectAnswer: 2,
					Explanation:   "Python uses # for single-line comments.",
				},
				{
					Question:      "What does the range(5) function generate?",
					Options:       []string{"Numbers 1 to 5", "Numbers 0 to 5", "Numbers 0 to 4", "Numbers 1 to 4"},
					CorrectAnswer: 2,
					Explanation:   "range(5) generates numbers from 0 to 4 (5 is excluded).",
				},
			},
			Coding: []CodingTask{
				{
					Question: "Print all even numbers from 0 to 10 using a for loop.",
					Hint:     "Use range with a step of 2",
					Solution: "for i in range(0, 11, 2):\n    print(i)",
					Language: "python",
				},
			},
		},
		"functions": {
			MCQs: []MCQ{
				{
					Question:      "What keyword is used to define a function in Python?",
					Options:       []string{"function", "def", "func", "define"},
					CorrectAnswer: 1,
					Explanation:   `Python uses the "def" keyword to define functions.`,
				},
			},
			Coding: []CodingTask{
				{
					Question: "Create a function that takes two numbers and returns their sum.",
					Hint:     "Use def to define the function and return the result",
					Solution: "def add(a, b):\n    return a + b\n\nprint(add(5, 3))",
					Language: "python",
				},
			},
		},
	},
	"javascript": {
		"intro": {
			MCQs: []MCQ{
				{
					Question:      "Which keyword declares a block-scoped variable that cannot be reassigned?",
					Options:       []string{"var", "let", "const", "static"},
					CorrectAnswer: 2,
					Explanation:   "const declares a block-scoped binding that cannot be reassigned.",
				},
			},
			Coding: []CodingTask{
				{
					Question: "Write an arrow function that doubles a number.",
					Hint:     "One parameter, implicit return",
					Solution: "const double = n => n * 2;",
					Language: "javascript",
				},
			},
		},
		"async": {
			MCQs: []MCQ{
				{
					Question:      "What does await do inside an async function?",
					Options:       []string{"Blocks the whole thread", "Pauses the function until the promise settles", "Cancels the promise", "Retries the promise"},
					CorrectAnswer: 1,
					Explanation:   "await suspends the async function until the promise resolves or rejects; the thread keeps running other work.",
				},
			},
			Coding: []CodingTask{
				{
					Question: "Fetch JSON from a URL and log it, with async/await.",
					Hint:     "fetch returns a promise of a Response",
					Solution: "const res = await fetch(url);\nconst data = await res.json();\nconsole.log(data);",
					Language: "javascript",
				},
			},
		},
	},
}
