package style

// Correlate labels, one per feature.
const (
	LabelWords            = "Talkativeness, verbal fluency"
	LabelWordsPerSentence = "Verbal fluency, cognitive complexity"
	LabelPronouns         = "Informal, personal"
	LabelPersonalPronouns = "Personal, social"
	LabelArticles         = "Use of concrete nouns, interest in objects/things"
	LabelPast             = "Focused on the past"
	LabelFuture           = "Future and goal-oriented"
	LabelPrepositions     = "Education, concern with precision"
	LabelNegations        = "Inhibition"
)

// Default thresholds for the two length features.
const (
	DefaultWordThreshold = 100
	DefaultWPSThreshold  = 20
)

// SummaryLength is the number of correlates reported.
const SummaryLength = 3

// Thresholds above which the length features are always reported.
type Thresholds struct {
	Words int
	WPS   float64
}

// DefaultThresholds returns the standard thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Words: DefaultWordThreshold, WPS: DefaultWPSThreshold}
}

type rankedFeature struct {
	value int
	label string
}

// Summarize picks the correlates to report for f. Length features above
// their threshold come first, followed by the largest counts (ties go to the
// earlier feature). The result is cut to SummaryLength entries.
func Summarize(f Features, th Thresholds) []string {
	var out []string
	if f.Words > th.Words {
		out = append(out, LabelWords)
	}
	if f.WordsPerSentence > th.WPS {
		out = append(out, LabelWordsPerSentence)
	}

	pool := []rankedFeature{
		{f.Pronouns, LabelPronouns},
		{f.PersonalPronouns, LabelPersonalPronouns},
		{f.Articles, LabelArticles},
		{f.Past, LabelPast},
		{f.Future, LabelFuture},
		{f.Prepositions, LabelPrepositions},
		{f.Negations, LabelNegations},
	}

	for range SummaryLength {
		best := 0
		for i := 1; i < len(pool); i++ {
			if pool[i].value > pool[best].value {
				best = i
			}
		}
		out = append(out, pool[best].label)
		pool = append(pool[:best], pool[best+1:]...)
	}

	return out[:SummaryLength]
}
