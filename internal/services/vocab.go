package services

// Skill and degree vocabularies live here as plain data so the matching
// chain's priority order is explicit and testable without touching the
// extraction logic.

var techSkills = []string{
	// Programming languages
	"python", "javascript", "java", "c++", "c#", "ruby", "go", "rust", "typescript",
	"r", "scala", "kotlin", "swift", "php", "perl", "matlab",

	// Web frameworks
	"react", "reactjs", "react.js", "react native", "angular", "angularjs", "angular.js",
	"vue", "vue.js", "vuejs", "node.js", "nodejs", "node",
	"express", "expressjs", "express.js", "django", "flask", "fastapi",
	"spring", "spring boot", ".net", "asp.net", "laravel", "rails", "next.js", "nextjs",
	"jquery", "backbone", "ember",

	// Databases
	"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "elasticsearch", "cassandra",
	"oracle", "sqlite", "dynamodb", "firebase", "supabase", "mariadb",

	// Cloud & devops
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s",
	"jenkins", "ci/cd", "circleci", "travis", "terraform", "ansible", "cloudformation",
	"heroku", "vercel", "netlify", "tomcat", "nginx", "apache",

	// Build tools
	"maven", "gradle", "grunt", "gulp", "npm", "yarn", "pnpm",

	// Tools & version control
	"git", "github", "gitlab", "bitbucket", "linux", "bash", "powershell", "unix",
	"rest api", "rest", "graphql", "microservices", "api integration", "soap",

	// AI/ML & data science
	"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn",
	"data analysis", "pandas", "numpy", "data science", "nlp", "computer vision",
	"rag", "langchain", "langgraph", "llm", "large language model", "gpt", "openai",
	"hugging face", "transformers", "vector database", "embeddings", "prompt engineering",
	"generative ai", "ai agents", "agentic ai",

	// Automation & testing
	"selenium", "playwright", "puppeteer", "cypress", "pytest", "junit", "mocha", "jest",
	"web scraping", "beautifulsoup", "scrapy", "automation", "exponentjs",

	// Data & BI tools
	"power bi", "tableau", "excel", "looker", "metabase", "superset",
	"apache spark", "hadoop", "airflow", "kafka", "etl",

	// Low-code & integration
	"n8n", "zapier", "make", "integromat", "retool", "appsmith",

	// Frontend
	"html", "css", "sass", "scss", "less", "tailwind", "tailwindcss", "bootstrap", "webpack", "vite",
	"figma", "ui/ux", "responsive design",

	// Project management & agile
	"agile", "scrum", "jira", "confluence", "trello", "asana", "notion",
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"time management", "project management", "mentoring", "collaboration",
	"adaptability", "creativity", "critical thinking", "decision making",
	"presentation", "negotiation", "stakeholder management",
}

// skillStoplist removes known false positives that slip through whole-word
// matching (section headings, fragments).
var skillStoplist = map[string]bool{
	"& certificates":    true,
	"technical skills:": true,
	"skills:":           true,
	"selenium)":         true,
}

// fieldRule infers an education field from keywords on the same line.
type fieldRule struct {
	keywords []string
	field    string
}

// degreeDetector recognizes one degree on a resume line. Detectors run in
// slice order and the first match consumes the line, so longer tokens
// (B.S.B.A.) must precede the shorter tokens they contain (B.S.).
type degreeDetector struct {
	degree string
	// tokens matched by substring; patterns matched as regexes. A detector
	// may use either or both.
	tokens     []string
	pattern    string
	excludes   []string
	fieldRules []fieldRule
	// defaultField applies when no field rule matches the line.
	defaultField string
}

var degreeDetectors = []degreeDetector{
	{
		degree: "B.S.B.A.",
		tokens: []string{"b.s.b.a", "bsba"},
		fieldRules: []fieldRule{
			{keywords: []string{"management", "information"}, field: "Management Information Systems"},
			{keywords: []string{"business"}, field: "Business Administration"},
		},
	},
	{
		degree: "M.S.",
		tokens: []string{"m.s.", "m.s.,", "master's", "master of science", "ms in", "ms,"},
		fieldRules: []fieldRule{
			{keywords: []string{"computer science"}, field: "Computer Science"},
			{keywords: []string{"information"}, field: "Information Technology"},
			{keywords: []string{"data"}, field: "Data Science"},
		},
	},
	{
		degree: "B.S.",
		tokens: []string{"b.s.", "b.s.,", "bachelor's", "bachelor of science", "bs in", "bs,"},
		fieldRules: []fieldRule{
			{keywords: []string{"computer"}, field: "Computer Science"},
		},
	},
	{
		degree: "MBA",
		tokens: []string{"mba", "m.b.a"},
		fieldRules: []fieldRule{
			{keywords: []string{"digital transformation"}, field: "Digital Transformation"},
			{keywords: []string{"business"}, field: "Business Administration"},
		},
	},
	{
		degree: "B.Tech",
		tokens: []string{"b.tech", "b tech", "btech", "b. tech"},
		fieldRules: []fieldRule{
			{keywords: []string{"computer"}, field: "Computer Engineering"},
			{keywords: []string{"information"}, field: "Information Technology"},
			{keywords: []string{"electronic"}, field: "Electronics"},
		},
	},
	{
		degree: "M.Tech",
		tokens: []string{"m.tech", "m tech", "mtech"},
		fieldRules: []fieldRule{
			{keywords: []string{"computer"}, field: "Computer Science"},
		},
	},
	{
		degree:   "B.E",
		pattern:  `\bb\.?e\.?\b`,
		excludes: []string{"bachelor"},
	},
	{
		degree:       "BCA",
		pattern:      `\bbca\b`,
		excludes:     []string{"bachelor"},
		defaultField: "Computer Applications",
	},
	{
		degree:       "MCA",
		pattern:      `\bmca\b`,
		excludes:     []string{"m.s.", "master's"},
		defaultField: "Computer Applications",
	},
}

var fresherIndicators = []string{
	"fresher", "entry level", "entry-level", "recent graduate", "new graduate",
}

// jobTitleIndicators flag a resume line as the start of a work-history entry.
var jobTitleIndicators = []string{
	"engineer", "developer", "manager", "analyst", "designer",
	"architect", "lead", "senior", "junior", "intern", "consultant",
}
