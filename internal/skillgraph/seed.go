package skillgraph

// SAT content domains per College Board's test specifications.
const (
	DomainAlgebra        = "algebra"
	DomainAdvancedMath   = "advanced-math"
	DomainProblemSolving = "problem-solving-data-analysis"
	DomainGeometry       = "geometry-trigonometry"

	DomainInformationIdeas = "information-ideas"
	DomainCraftStructure   = "craft-structure"
	DomainExpressionIdeas  = "expression-of-ideas"
	DomainStandardEnglish  = "standard-english-conventions"
)

// Default builds the standard SAT skill catalog. The catalog is fixed at
// build time; only per-learner state layered on top of it changes at runtime.
// Each call returns a fresh Graph so callers can own one per learner.
func Default() *Graph {
	g, err := New(defaultSkills())
	if err != nil {
		// The catalog is a compile-time constant; an invalid catalog is a
		// programmer error caught by TestDefaultCatalogValid.
		panic(err)
	}
	return g
}

func defaultSkills() []Skill {
	return []Skill{
		// Math — Algebra.
		{ID: "linear-equations", Name: "Linear Equations in One Variable", Subject: SubjectMath, Domain: DomainAlgebra},
		{ID: "linear-functions", Name: "Linear Functions", Subject: SubjectMath, Domain: DomainAlgebra,
			Prerequisites: []string{"linear-equations"}},
		{ID: "linear-two-variables", Name: "Linear Equations in Two Variables", Subject: SubjectMath, Domain: DomainAlgebra,
			Prerequisites: []string{"linear-equations"}},
		{ID: "systems-of-equations", Name: "Systems of Two Linear Equations", Subject: SubjectMath, Domain: DomainAlgebra,
			Prerequisites: []string{"linear-two-variables"}},
		{ID: "linear-inequalities", Name: "Linear Inequalities", Subject: SubjectMath, Domain: DomainAlgebra,
			Prerequisites: []string{"linear-equations"}},

		// Math — Problem Solving & Data Analysis.
		{ID: "ratios-rates", Name: "Ratios, Rates, and Proportions", Subject: SubjectMath, Domain: DomainProblemSolving},
		{ID: "percentages", Name: "Percentages", Subject: SubjectMath, Domain: DomainProblemSolving,
			Prerequisites: []string{"ratios-rates"}},
		{ID: "one-variable-data", Name: "One-Variable Data: Distributions", Subject: SubjectMath, Domain: DomainProblemSolving},
		{ID: "two-variable-data", Name: "Two-Variable Data: Models and Scatterplots", Subject: SubjectMath, Domain: DomainProblemSolving,
			Prerequisites: []string{"one-variable-data", "linear-functions"}},
		{ID: "probability", Name: "Probability and Conditional Probability", Subject: SubjectMath, Domain: DomainProblemSolving,
			Prerequisites: []string{"ratios-rates"}},
		{ID: "sample-statistics", Name: "Inference from Sample Statistics", Subject: SubjectMath, Domain: DomainProblemSolving,
			Prerequisites: []string{"one-variable-data", "percentages"}},

		// Math — Advanced Math.
		{ID: "exponents-radicals", Name: "Exponents and Radicals", Subject: SubjectMath, Domain: DomainAdvancedMath,
			Prerequisites: []string{"linear-equations"}},
		{ID: "polynomials", Name: "Polynomial Expressions", Subject: SubjectMath, Domain: DomainAdvancedMath,
			Prerequisites: []string{"exponents-radicals"}},
		{ID: "quadratic-equations", Name: "Quadratic Equations and Functions", Subject: SubjectMath, Domain: DomainAdvancedMath,
			Prerequisites: []string{"polynomials", "linear-functions"}},
		{ID: "rational-expressions", Name: "Rational Expressions and Equations", Subject: SubjectMath, Domain: DomainAdvancedMath,
			Prerequisites: []string{"polynomials"}},
		{ID: "nonlinear-functions", Name: "Nonlinear Functions", Subject: SubjectMath, Domain: DomainAdvancedMath,
			Prerequisites: []string{"quadratic-equations", "exponents-radicals"}},

		// Math — Geometry & Trigonometry.
		{ID: "area-volume", Name: "Area and Volume", Subject: SubjectMath, Domain: DomainGeometry},
		{ID: "lines-angles-triangles", Name: "Lines, Angles, and Triangles", Subject: SubjectMath, Domain: DomainGeometry},
		{ID: "right-triangle-trig", Name: "Right Triangles and Trigonometry", Subject: SubjectMath, Domain: DomainGeometry,
			Prerequisites: []string{"lines-angles-triangles"}},
		{ID: "circles", Name: "Circles", Subject: SubjectMath, Domain: DomainGeometry,
			Prerequisites: []string{"lines-angles-triangles", "quadratic-equations"}},

		// Reading & Writing — Information and Ideas.
		{ID: "central-ideas", Name: "Central Ideas and Details", Subject: SubjectReadingWriting, Domain: DomainInformationIdeas},
		{ID: "command-of-evidence", Name: "Command of Evidence: Textual", Subject: SubjectReadingWriting, Domain: DomainInformationIdeas,
			Prerequisites: []string{"central-ideas"}},
		{ID: "quantitative-evidence", Name: "Command of Evidence: Quantitative", Subject: SubjectReadingWriting, Domain: DomainInformationIdeas,
			Prerequisites: []string{"command-of-evidence"}},
		{ID: "inferences", Name: "Inferences", Subject: SubjectReadingWriting, Domain: DomainInformationIdeas,
			Prerequisites: []string{"central-ideas"}},

		// Reading & Writing — Craft and Structure.
		{ID: "words-in-context", Name: "Words in Context", Subject: SubjectReadingWriting, Domain: DomainCraftStructure},
		{ID: "text-structure", Name: "Text Structure and Purpose", Subject: SubjectReadingWriting, Domain: DomainCraftStructure,
			Prerequisites: []string{"central-ideas"}},
		{ID: "cross-text-connections", Name: "Cross-Text Connections", Subject: SubjectReadingWriting, Domain: DomainCraftStructure,
			Prerequisites: []string{"text-structure", "inferences"}},

		// Reading & Writing — Expression of Ideas.
		{ID: "rhetorical-synthesis", Name: "Rhetorical Synthesis", Subject: SubjectReadingWriting, Domain: DomainExpressionIdeas,
			Prerequisites: []string{"command-of-evidence"}},
		{ID: "transitions", Name: "Transitions", Subject: SubjectReadingWriting, Domain: DomainExpressionIdeas,
			Prerequisites: []string{"text-structure"}},

		// Reading & Writing — Standard English Conventions.
		{ID: "sentence-boundaries", Name: "Boundaries Between Sentences", Subject: SubjectReadingWriting, Domain: DomainStandardEnglish},
		{ID: "subject-verb-agreement", Name: "Subject-Verb Agreement", Subject: SubjectReadingWriting, Domain: DomainStandardEnglish},
		{ID: "verb-forms", Name: "Verb Forms and Tense", Subject: SubjectReadingWriting, Domain: DomainStandardEnglish,
			Prerequisites: []string{"subject-verb-agreement"}},
		{ID: "pronouns-modifiers", Name: "Pronouns and Modifier Placement", Subject: SubjectReadingWriting, Domain: DomainStandardEnglish,
			Prerequisites: []string{"sentence-boundaries"}},
	}
}
