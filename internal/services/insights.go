package services

import (
	"fmt"
	"strings"
)

const (
	maxInsights        = 6
	maxRecommendations = 6

	lowHealthScore             = 60
	painRecommendationPercent  = 40
	riskConcerningPercent      = 30
	riskShortCycleDays         = 21
	riskLongCycleDays          = 35
	wellEstablishedRecordCount = 30
)

// AnalysisContext is the immutable input every insight rule reads.
type AnalysisContext struct {
	RecordCount       int
	CycleCount        int
	Variation         float64
	Regularity        Regularity
	HealthScore       int
	Frequencies       []SymptomFrequency
	SymptomTrends     []SymptomTrend
	Moods             []MoodShare
	ObservedIntervals []int
	Rules             ScoringRules
}

type Insights struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	RiskFactors     []string `json:"risk_factors"`
}

// InsightRule appends at most one message to its list.
type InsightRule func(AnalysisContext) (string, bool)

var insightRules = []InsightRule{
	regularityInsight,
	dominantMoodInsight,
	topSymptomInsight,
	dataVolumeInsight,
	constantRule("Every day you log makes your predictions a little more accurate."),
	constantRule("Your body has its own rhythm. Small variations from month to month are normal."),
}

var recommendationRules = []InsightRule{
	consultationRecommendation,
	detailedLoggingRecommendation,
	painManagementRecommendation,
	constantRule("Stay hydrated and keep a balanced diet throughout your cycle."),
	constantRule("Aim for regular sleep; rest supports hormonal balance."),
	constantRule("Gentle exercise such as walking or yoga can ease cycle-related discomfort."),
}

var riskFactorRules = []InsightRule{
	atypicalIntervalRisk,
	concerningSymptomRisk,
}

func GenerateInsights(ctx AnalysisContext) Insights {
	return Insights{
		Insights:        applyRules(ctx, insightRules, maxInsights),
		Recommendations: applyRules(ctx, recommendationRules, maxRecommendations),
		RiskFactors:     applyRules(ctx, riskFactorRules, len(riskFactorRules)),
	}
}

func applyRules(ctx AnalysisContext, rules []InsightRule, limit int) []string {
	messages := make([]string, 0, min(limit, len(rules)))
	for _, rule := range rules {
		if len(messages) >= limit {
			break
		}
		if message, ok := rule(ctx); ok {
			messages = append(messages, message)
		}
	}
	return messages
}

func constantRule(message string) InsightRule {
	return func(AnalysisContext) (string, bool) {
		return message, true
	}
}

func regularityInsight(ctx AnalysisContext) (string, bool) {
	if ctx.CycleCount < 2 {
		return "", false
	}
	variation := fmt.Sprintf("%.1f", ctx.Variation)
	switch ctx.Regularity {
	case RegularityVeryRegular:
		return fmt.Sprintf("Your cycles are very regular, varying by only %s days.", variation), true
	case RegularityRegular:
		return fmt.Sprintf("Your cycles are regular, with a variation of %s days.", variation), true
	case RegularityIrregular:
		return fmt.Sprintf("Your cycles vary by %s days, which is somewhat irregular.", variation), true
	default:
		return fmt.Sprintf("Your cycles vary by %s days, which is quite irregular.", variation), true
	}
}

func dominantMoodInsight(ctx AnalysisContext) (string, bool) {
	if len(ctx.Moods) == 0 {
		return "", false
	}
	top := ctx.Moods[0]
	return fmt.Sprintf("Your most frequent mood is %s, logged on %d%% of days.", strings.ToLower(top.Name), top.Percent), true
}

func topSymptomInsight(ctx AnalysisContext) (string, bool) {
	if len(ctx.SymptomTrends) == 0 {
		return "", false
	}
	top := ctx.SymptomTrends[0]
	message := fmt.Sprintf("%s is your most frequent symptom, logged on %d%% of days", top.Name, top.FrequencyPercent)
	switch top.Trend {
	case TrendUp:
		message += " and becoming more frequent."
	case TrendDown:
		message += " and becoming less frequent."
	default:
		message += "."
	}
	return message, true
}

func dataVolumeInsight(ctx AnalysisContext) (string, bool) {
	if ctx.RecordCount < wellEstablishedRecordCount {
		return fmt.Sprintf("You have logged %d days so far. Logging daily for a few more weeks will sharpen these insights.", ctx.RecordCount), true
	}
	return fmt.Sprintf("With %d logged days, your history gives a solid basis for analysis.", ctx.RecordCount), true
}

func consultationRecommendation(ctx AnalysisContext) (string, bool) {
	if ctx.HealthScore >= lowHealthScore {
		return "", false
	}
	return "Consider discussing your cycle patterns with a healthcare professional.", true
}

func detailedLoggingRecommendation(ctx AnalysisContext) (string, bool) {
	if !ctx.Regularity.IsIrregular() {
		return "", false
	}
	return "Log symptoms, mood and flow every day to help identify what affects your cycle length.", true
}

func painManagementRecommendation(ctx AnalysisContext) (string, bool) {
	matched := ctx.Rules.ConcerningAbove(ctx.Frequencies, painRecommendationPercent)
	if len(matched) == 0 {
		return "", false
	}
	return fmt.Sprintf("%s appears often. Note what helps with pain relief and share it with your doctor.", matched[0].Name), true
}

func atypicalIntervalRisk(ctx AnalysisContext) (string, bool) {
	for _, interval := range ctx.ObservedIntervals {
		if interval < riskShortCycleDays || interval > riskLongCycleDays {
			return fmt.Sprintf("Cycle lengths outside the typical %d-%d day range were observed.", riskShortCycleDays, riskLongCycleDays), true
		}
	}
	return "", false
}

func concerningSymptomRisk(ctx AnalysisContext) (string, bool) {
	matched := ctx.Rules.ConcerningAbove(ctx.Frequencies, riskConcerningPercent)
	if len(matched) == 0 {
		return "", false
	}
	names := make([]string, 0, len(matched))
	for _, frequency := range matched {
		names = append(names, fmt.Sprintf("%s (%d%%)", frequency.Name, frequency.Percent))
	}
	return "Frequent severe symptoms: " + strings.Join(names, ", ") + ".", true
}
