package roadmap

import (
	"fmt"
	"math"
	"strings"
)

// Generate turns a questionnaire request into a full plan. It is a pure
// function: same request, same plan, no I/O and no randomness.
func Generate(req Request) Plan {
	goals := strings.ToLower(req.Goals)
	tokens := strings.Fields(goals)
	level := NormalizeLevel(req.CurrentLevel)

	techs := detectTechnologies(tokens)
	problemTopics := detectProblemTopics(goals)

	path := assemblePath(req, goals, level, techs, problemTopics)
	focus := determineFocusArea(goals, path)
	path = applyLevelFilter(path, level, focus)
	path = appendGoalSteps(path, goals)

	totalWeeks := weeksFor(req.TimeAvailability)
	weeks := partition(path, totalWeeks)

	return Plan{
		Title:        planTitle(req.Track),
		Description:  fmt.Sprintf("A %d-week %s plan for the %s level", totalWeeks, focus, level),
		Weeks:        weeks,
		TotalWeeks:   totalWeeks,
		FocusArea:    focus,
		Technologies: techs,
		Tips:         buildTips(goals, level),
		Problems:     FilterProblems(level, focus, ProblemFilter{}),
	}
}

func planTitle(track string) string {
	if track != "" {
		return track + " Roadmap"
	}
	return "Your Personalized Learning Roadmap"
}

func NormalizeLevel(level string) string {
	l := strings.ToLower(level)
	switch {
	case strings.Contains(l, "advanced"):
		return LevelAdvanced
	case strings.Contains(l, "intermediate"):
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// detectTechnologies matches goal tokens against the technology table.
// Matching is substring in both directions so "react" hits "reactjs" and
// "reactjs" hits the "react" alias. A direct alias hit is high confidence;
// a hit only via related terms is medium.
func detectTechnologies(tokens []string) []DetectedTech {
	var detected []DetectedTech
	for _, tech := range technologyTable {
		var matchedRelated []string
		aliasHit := false
		for _, token := range tokens {
			// Single characters substring-match half the table; skip them.
			if len(token) < 2 {
				continue
			}
			for _, alias := range tech.aliases {
				if bidirectionalMatch(token, alias) {
					aliasHit = true
				}
			}
			for _, related := range tech.related {
				if bidirectionalMatch(token, related) {
					matchedRelated = appendUnique(matchedRelated, related)
				}
			}
		}
		if !aliasHit && len(matchedRelated) == 0 {
			continue
		}
		confidence := "medium"
		if aliasHit {
			confidence = "high"
		}
		detected = append(detected, DetectedTech{
			Name:       tech.name,
			Category:   tech.category,
			Confidence: confidence,
			Related:    matchedRelated,
		})
	}
	return detected
}

func bidirectionalMatch(token, alias string) bool {
	return strings.Contains(token, alias) || strings.Contains(alias, token)
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

// detectProblemTopics scans the whole goals text for trouble keywords.
// Output follows table order; topics shared by several categories repeat.
func detectProblemTopics(goals string) []string {
	var topics []string
	for _, category := range problemCategories {
		for _, alias := range category.aliases {
			if strings.Contains(goals, alias) {
				topics = append(topics, category.topics...)
				break
			}
		}
	}
	return topics
}

func assemblePath(req Request, goals, level string, techs []DetectedTech, problemTopics []string) []string {
	var path []string

	if len(techs) > 0 {
		path = append(path, "Technologies detected in your goals:")
		for _, t := range techs {
			path = append(path, formatTech(t))
		}
		path = append(path, "")
	}

	if len(problemTopics) > 0 {
		path = append(path, "Problem areas to work on:")
		path = append(path, problemTopics...)
		path = append(path, "")
	}

	if len(problemTopics) == 0 {
		if level == LevelBeginner {
			path = append(path, beginnerFoundationSteps...)
		} else {
			path = append(path, reviewFundamentalsStep)
		}
	} else {
		path = append(path, "Focus on your specific challenges:")
		path = append(path, problemTopics...)
	}

	path = append(path, frameworkStepsFor(goals)...)
	path = append(path, stackSteps(goals)...)

	if level == LevelIntermediate || level == LevelAdvanced {
		path = append(path, architectureSteps...)
	}
	if level == LevelAdvanced {
		path = append(path, expertSteps...)
	}

	path = append(path, "Project: "+projectFor(req.Goals, techs))
	path = append(path, projectBreakdownSteps...)

	path = append(path, deploymentSection(goals)...)

	return path
}

func formatTech(t DetectedTech) string {
	if len(t.Related) > 0 {
		return fmt.Sprintf("%s (%s, related to: %s)", t.Name, t.Category, strings.Join(t.Related, ", "))
	}
	return fmt.Sprintf("%s (%s)", t.Name, t.Category)
}

// frameworkStepsFor appends stack-specific steps for every framework rule
// whose keywords all appear in the goals (and none of its exclusions do).
func frameworkStepsFor(goals string) []string {
	var steps []string
	for _, fw := range frameworkTable {
		if matchAll(goals, fw.allOf) && matchNone(goals, fw.noneOf) {
			steps = append(steps, fw.steps...)
		}
	}
	return steps
}

func matchAll(goals string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(goals, term) {
			return false
		}
	}
	return true
}

func matchNone(goals string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(goals, term) {
			return false
		}
	}
	return true
}

// projectFor derives the project step: a verb phrase lifted from the goals
// text if one exists, otherwise a project synthesized from the detected
// stack, otherwise a generic default.
func projectFor(originalGoals string, techs []DetectedTech) string {
	if phrase := extractProjectPhrase(originalGoals); phrase != "" {
		return phrase
	}
	if synthesized := synthesizeProject(techs); synthesized != "" {
		return synthesized
	}
	return "Build a full-stack web application to apply your skills"
}

var projectVerbs = []string{"build", "create", "develop", "make", "design"}

// extractProjectPhrase finds the first action verb in the goals and returns
// it with up to the three following words, preserving the user's casing.
func extractProjectPhrase(goals string) string {
	words := strings.Fields(goals)
	for i, word := range words {
		lower := strings.ToLower(strings.Trim(word, ".,!?"))
		for _, verb := range projectVerbs {
			if lower != verb {
				continue
			}
			end := i + 4
			if end > len(words) {
				end = len(words)
			}
			return strings.Join(words[i:end], " ")
		}
	}
	return ""
}

func synthesizeProject(techs []DetectedTech) string {
	var frontend, backend, database string
	for _, t := range techs {
		switch t.Category {
		case "frontend framework":
			if frontend == "" {
				frontend = t.Name
			}
		case "backend runtime":
			if backend == "" {
				backend = t.Name
			}
		case "database":
			if database == "" {
				database = t.Name
			}
		}
	}
	var project string
	switch {
	case frontend != "" && backend != "":
		project = "Build a full-stack app with " + frontend + " and " + backend
	case frontend != "":
		project = "Build an interactive " + frontend + " application"
	case backend != "":
		project = "Build a REST API with " + backend
	default:
		return ""
	}
	if database != "" {
		project += " backed by " + database
	}
	return project
}

// stackSteps appends generic step blocks for stacks the framework table has
// no dedicated entry for, driven by the database and testing keyword rules.
func stackSteps(goals string) []string {
	var steps []string
	if matchAnyRule(goals, databaseRules) {
		steps = append(steps, databaseSteps...)
	}
	if matchAnyRule(goals, testingRules) {
		steps = append(steps, testingSteps...)
	}
	return steps
}

// deploymentSection adds a closing deployment block when any devops keyword
// appears in the goals, branched on which hosting keyword matched.
func deploymentSection(goals string) []string {
	if !matchAnyRule(goals, devopsRules) {
		return nil
	}
	section := []string{"", "Deployment:"}
	switch {
	case strings.Contains(goals, "vercel") || strings.Contains(goals, "netlify"):
		section = append(section,
			"Deploy frontend apps on Vercel or Netlify",
			"Set up preview deployments from git branches")
	case strings.Contains(goals, "heroku"):
		section = append(section,
			"Deploy your app on Heroku with a Procfile",
			"Configure environment variables and add-ons")
	case strings.Contains(goals, "aws") || strings.Contains(goals, "cloud") || strings.Contains(goals, "azure") || strings.Contains(goals, "gcp"):
		section = append(section,
			"Learn the basics of a cloud provider (compute, storage, networking)",
			"Deploy behind a managed load balancer with TLS")
	default:
		section = append(section,
			"Put a project on the public internet end to end",
			"Automate deploys from your main branch")
	}
	return section
}

// applyLevelFilter rewrites or prunes the path per skill level. It runs
// before the career/freelance appendix on purpose: the advanced "learn "
// filter must never see appendix steps.
func applyLevelFilter(path []string, level, focus string) []string {
	switch level {
	case LevelBeginner:
		out := make([]string, 0, len(path))
		for _, step := range path {
			if step == "" || isHeader(step) ||
				strings.HasPrefix(step, "Master") ||
				strings.HasPrefix(step, "Learn ") ||
				strings.HasPrefix(step, "Project:") {
				out = append(out, step)
				continue
			}
			out = append(out, "Learn "+strings.ToLower(step))
		}
		return out
	case LevelIntermediate:
		out := path[:0:0]
		for _, step := range path {
			lower := strings.ToLower(step)
			if strings.Contains(lower, "fundamentals") || strings.Contains(lower, "learn html") {
				continue
			}
			out = append(out, step)
		}
		return out
	case LevelAdvanced:
		out := path[:0:0]
		for _, step := range path {
			lower := strings.ToLower(step)
			if strings.Contains(lower, "fundamentals") || strings.Contains(lower, "learn ") {
				continue
			}
			out = append(out, step)
		}
		if countSteps(out) < 5 {
			fillers, ok := advancedFillers[focus]
			if !ok {
				fillers = advancedFillers[FocusWeb]
			}
			out = append(out, fillers...)
		}
		return out
	}
	return path
}

func isHeader(step string) bool {
	return strings.HasSuffix(step, ":")
}

// countSteps counts real steps, ignoring headers and blank separators.
func countSteps(path []string) int {
	n := 0
	for _, step := range path {
		if step != "" && !isHeader(step) {
			n++
		}
	}
	return n
}

// appendGoalSteps adds the career and freelance appendices. Runs after the
// level filter (see applyLevelFilter).
func appendGoalSteps(path []string, goals string) []string {
	if strings.Contains(goals, "job") || strings.Contains(goals, "career") {
		path = append(path, careerSteps...)
	}
	if strings.Contains(goals, "freelance") || strings.Contains(goals, "freelancing") {
		path = append(path, freelanceSteps...)
	}
	return path
}

func weeksFor(timeAvailability string) int {
	if weeks, ok := weeksByTimeBudget[timeAvailability]; ok {
		return weeks
	}
	return defaultWeeks
}

// partition chunks the path into consecutive weeks of
// ceil(len(path)/totalWeeks) steps each, numbering from 1.
func partition(path []string, totalWeeks int) []WeekPlan {
	if len(path) == 0 {
		return nil
	}
	perWeek := int(math.Ceil(float64(len(path)) / float64(totalWeeks)))
	if perWeek < 1 {
		perWeek = 1
	}
	var weeks []WeekPlan
	for start, week := 0, 1; start < len(path); start, week = start+perWeek, week+1 {
		end := start + perWeek
		if end > len(path) {
			end = len(path)
		}
		weeks = append(weeks, WeekPlan{Week: week, Steps: path[start:end]})
	}
	return weeks
}

// determineFocusArea classifies the request. Explicit one-sided keywords win;
// otherwise the side with more keyword hits does, with ties and empty paths
// falling back to plain web development.
func determineFocusArea(goals string, path []string) string {
	frontend := matchAnyRule(goals, frontendRules)
	backend := matchAnyRule(goals, backendRules)
	switch {
	case frontend && !backend:
		return FocusFrontend
	case backend && !frontend:
		return FocusBackend
	}
	if len(path) == 0 {
		return FocusWeb
	}
	frontendHits := countRuleHits(goals, frontendRules)
	backendHits := countRuleHits(goals, backendRules)
	switch {
	case frontendHits > backendHits:
		return FocusFrontend
	case backendHits > frontendHits:
		return FocusBackend
	default:
		return FocusWeb
	}
}

func matchRule(goals string, rule keywordRule) bool {
	if !strings.Contains(goals, rule.term) {
		return false
	}
	return rule.unless == "" || !strings.Contains(goals, rule.unless)
}

func matchAnyRule(goals string, rules []keywordRule) bool {
	for _, rule := range rules {
		if matchRule(goals, rule) {
			return true
		}
	}
	return false
}

func countRuleHits(goals string, rules []keywordRule) int {
	hits := 0
	for _, rule := range rules {
		if matchRule(goals, rule) {
			hits++
		}
	}
	return hits
}

// buildTips mixes the level's fixed tips with at most three goal-driven ones.
func buildTips(goals, level string) []string {
	tips := append([]string(nil), tipsByLevel[level]...)
	var extra []string
	if strings.Contains(goals, "job") || strings.Contains(goals, "career") {
		extra = append(extra, careerTips...)
	}
	if strings.Contains(goals, "freelance") || strings.Contains(goals, "freelancing") {
		extra = append(extra, freelanceTips...)
	}
	if len(extra) > 3 {
		extra = extra[:3]
	}
	return append(tips, extra...)
}
