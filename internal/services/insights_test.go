package services

import (
	"strings"
	"testing"
)

func TestGenerateInsightsForNewUser(t *testing.T) {
	t.Parallel()

	result := GenerateInsights(AnalysisContext{
		RecordCount: 5,
		HealthScore: 85,
		Regularity:  RegularityVeryRegular,
		Rules:       DefaultScoringRules(),
	})

	if len(result.Insights) != 3 {
		t.Fatalf("expected 3 insights, got %v", result.Insights)
	}
	if !strings.Contains(result.Insights[0], "logged 5 days") {
		t.Fatalf("expected data volume insight first, got %q", result.Insights[0])
	}
	if len(result.Recommendations) != 3 {
		t.Fatalf("expected only general recommendations, got %v", result.Recommendations)
	}
	if len(result.RiskFactors) != 0 {
		t.Fatalf("expected no risk factors, got %v", result.RiskFactors)
	}
}

func TestGenerateInsightsAllRulesFire(t *testing.T) {
	t.Parallel()

	ctx := AnalysisContext{
		RecordCount: 45,
		CycleCount:  3,
		Variation:   8.2,
		Regularity:  RegularityVeryIrregular,
		HealthScore: 50,
		Frequencies: []SymptomFrequency{
			{Name: "Headache", Percent: 70},
			{Name: "Severe cramps", Percent: 60},
		},
		SymptomTrends:     []SymptomTrend{{Name: "Headache", FrequencyPercent: 70, Trend: TrendUp}},
		Moods:             []MoodShare{{Name: "Tired", Percent: 40}},
		ObservedIntervals: []int{28, 18},
		Rules:             DefaultScoringRules(),
	}

	result := GenerateInsights(ctx)
	if len(result.Insights) != maxInsights {
		t.Fatalf("expected %d insights, got %d", maxInsights, len(result.Insights))
	}
	if len(result.Recommendations) != maxRecommendations {
		t.Fatalf("expected %d recommendations, got %d", maxRecommendations, len(result.Recommendations))
	}

	wantInsights := []string{
		"Your cycles vary by 8.2 days, which is quite irregular.",
		"Your most frequent mood is tired, logged on 40% of days.",
		"Headache is your most frequent symptom, logged on 70% of days and becoming more frequent.",
		"With 45 logged days, your history gives a solid basis for analysis.",
	}
	for index, want := range wantInsights {
		if result.Insights[index] != want {
			t.Fatalf("insight %d: expected %q, got %q", index, want, result.Insights[index])
		}
	}

	if !strings.Contains(result.Recommendations[0], "healthcare professional") {
		t.Fatalf("expected consultation first, got %q", result.Recommendations[0])
	}
	if !strings.HasPrefix(result.Recommendations[2], "Severe cramps appears often") {
		t.Fatalf("expected pain management recommendation, got %q", result.Recommendations[2])
	}

	wantRisks := []string{
		"Cycle lengths outside the typical 21-35 day range were observed.",
		"Frequent severe symptoms: Severe cramps (60%).",
	}
	if len(result.RiskFactors) != len(wantRisks) {
		t.Fatalf("expected risks %v, got %v", wantRisks, result.RiskFactors)
	}
	for index, want := range wantRisks {
		if result.RiskFactors[index] != want {
			t.Fatalf("risk %d: expected %q, got %q", index, want, result.RiskFactors[index])
		}
	}
}

func TestInsightRulesAreIndependent(t *testing.T) {
	t.Parallel()

	ctx := AnalysisContext{CycleCount: 1, Variation: 1}
	if _, ok := regularityInsight(ctx); ok {
		t.Fatal("expected no regularity insight with a single cycle")
	}
	if _, ok := atypicalIntervalRisk(AnalysisContext{ObservedIntervals: []int{21, 35}}); ok {
		t.Fatal("expected interval bounds to be inclusive")
	}
	if _, ok := concerningSymptomRisk(AnalysisContext{
		Frequencies: []SymptomFrequency{{Name: "Intense pain", Percent: 30}},
		Rules:       DefaultScoringRules(),
	}); ok {
		t.Fatal("expected no risk at exactly 30%")
	}
}
