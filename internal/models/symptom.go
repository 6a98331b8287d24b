package models

import "strings"

const NeutralPresentationColor = "#9E9E9E"

type BuiltinSymptom struct {
	Name  string
	Icon  string
	Color string
}

type BuiltinMood struct {
	Name  string
	Color string
}

func DefaultBuiltinSymptoms() []BuiltinSymptom {
	return []BuiltinSymptom{
		{Name: "Cramps", Icon: "🩸", Color: "#FF4444"},
		{Name: "Severe cramps", Icon: "⚡", Color: "#C62828"},
		{Name: "Excessive bleeding", Icon: "🩸", Color: "#B71C1C"},
		{Name: "Intense pain", Icon: "🔥", Color: "#D84315"},
		{Name: "Headache", Icon: "🤕", Color: "#FFA500"},
		{Name: "Mood swings", Icon: "😢", Color: "#9B59B6"},
		{Name: "Bloating", Icon: "🎈", Color: "#3498DB"},
		{Name: "Fatigue", Icon: "😴", Color: "#95A5A6"},
		{Name: "Breast tenderness", Icon: "💔", Color: "#E91E63"},
		{Name: "Acne", Icon: "🔴", Color: "#E74C3C"},
		{Name: "Back pain", Icon: "🦴", Color: "#8E6E53"},
		{Name: "Nausea", Icon: "🤢", Color: "#7CB342"},
		{Name: "Spotting", Icon: "🩹", Color: "#C55A7A"},
		{Name: "Irritability", Icon: "😤", Color: "#FF7043"},
		{Name: "Insomnia", Icon: "🌙", Color: "#5C6BC0"},
		{Name: "Food cravings", Icon: "🍫", Color: "#A1887F"},
		{Name: "Diarrhea", Icon: "🚽", Color: "#26A69A"},
		{Name: "Constipation", Icon: "🪨", Color: "#8D6E63"},
	}
}

func DefaultBuiltinMoods() []BuiltinMood {
	return []BuiltinMood{
		{Name: "Happy", Color: "#FFD54F"},
		{Name: "Calm", Color: "#81C784"},
		{Name: "Energetic", Color: "#FF8A65"},
		{Name: "Sensitive", Color: "#F48FB1"},
		{Name: "Sad", Color: "#64B5F6"},
		{Name: "Anxious", Color: "#BA68C8"},
		{Name: "Irritated", Color: "#E57373"},
		{Name: "Tired", Color: "#90A4AE"},
	}
}

var presentationColors = buildPresentationColors()

// PresentationColor looks a symptom or mood up by name, ignoring case and
// surrounding whitespace.
func PresentationColor(name string) string {
	if color, ok := presentationColors[NormalizeLabel(name)]; ok {
		return color
	}
	return NeutralPresentationColor
}

func NormalizeLabel(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func buildPresentationColors() map[string]string {
	colors := make(map[string]string)
	for _, symptom := range DefaultBuiltinSymptoms() {
		colors[NormalizeLabel(symptom.Name)] = symptom.Color
	}
	for _, mood := range DefaultBuiltinMoods() {
		colors[NormalizeLabel(mood.Name)] = mood.Color
	}
	return colors
}
