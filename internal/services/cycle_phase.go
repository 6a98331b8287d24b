package services

import (
	"time"

	"github.com/terraincognita07/cyclelens/internal/models"
)

type Phase string

const (
	PhaseMenstrual     Phase = "menstrual"
	PhasePostMenstrual Phase = "postMenstrual"
	PhaseFertile       Phase = "fertile"
	PhaseOvulation     Phase = "ovulation"
	PhasePreMenstrual  Phase = "preMenstrual"
)

const lutealPhaseDays = 14

// PhaseOrder is the order phases are entered within one cycle.
var PhaseOrder = []Phase{PhaseMenstrual, PhasePostMenstrual, PhaseFertile, PhaseOvulation, PhasePreMenstrual}

type PhaseState struct {
	Phase      Phase   `json:"phase"`
	DayOfCycle int     `json:"day_of_cycle"`
	Intensity  float64 `json:"intensity"`
}

// CalculatePhase projects config forward to today. The cycle day always wraps,
// so a stale last-period date still yields a phase.
func CalculatePhase(today time.Time, config models.CycleConfig) PhaseState {
	cycleLength := config.AverageCycleLength
	if cycleLength <= 0 {
		cycleLength = models.DefaultCycleLength
	}
	daysSince := DaysBetween(config.LastPeriodDate, today)
	dayOfCycle := floorMod(daysSince, cycleLength) + 1

	phase := PhaseForDay(dayOfCycle, cycleLength, config.AveragePeriodLength)
	return PhaseState{
		Phase:      phase,
		DayOfCycle: dayOfCycle,
		Intensity:  roundTo(PhaseIntensity(phase, dayOfCycle, cycleLength, config.AveragePeriodLength), 2),
	}
}

func OvulationDayOfCycle(cycleLength int) int {
	return cycleLength - lutealPhaseDays
}

// PhaseForDay maps a 1-indexed cycle day to its phase. The menstrual check
// runs first, so a long period can hide the phases that would overlap it.
func PhaseForDay(dayOfCycle int, cycleLength int, periodLength int) Phase {
	ovulationDay := OvulationDayOfCycle(cycleLength)
	switch {
	case dayOfCycle <= periodLength:
		return PhaseMenstrual
	case dayOfCycle < ovulationDay-2:
		return PhasePostMenstrual
	case dayOfCycle <= ovulationDay+1:
		if dayOfCycle == ovulationDay {
			return PhaseOvulation
		}
		return PhaseFertile
	default:
		return PhasePreMenstrual
	}
}

// PhaseIntensity is a triangular weight in [0, 1] that peaks on the
// characteristic day of the phase and falls off toward its edges.
func PhaseIntensity(phase Phase, dayOfCycle int, cycleLength int, periodLength int) float64 {
	start, end, peak := phaseSpan(phase, cycleLength, periodLength)
	if end < start || dayOfCycle < start || dayOfCycle > end {
		return 0
	}
	reach := max(peak-start, end-peak) + 1
	distance := dayOfCycle - peak
	if distance < 0 {
		distance = -distance
	}
	return 1 - float64(distance)/float64(reach)
}

func phaseSpan(phase Phase, cycleLength int, periodLength int) (int, int, int) {
	ovulationDay := OvulationDayOfCycle(cycleLength)
	switch phase {
	case PhaseMenstrual:
		return 1, periodLength, min(2, periodLength)
	case PhasePostMenstrual:
		start, end := periodLength+1, ovulationDay-3
		return start, end, (start + end) / 2
	case PhaseFertile:
		start, end := max(periodLength+1, ovulationDay-2), ovulationDay+1
		return start, end, ovulationDay
	case PhaseOvulation:
		return ovulationDay, ovulationDay, ovulationDay
	default:
		start, end := max(periodLength+1, ovulationDay+2), cycleLength
		return start, end, (start + end) / 2
	}
}

func floorMod(value int, modulus int) int {
	result := value % modulus
	if result < 0 {
		result += modulus
	}
	return result
}
