package scoring

// StepCount is the number of steps in the accountability framework.
const StepCount = 9

// stepNames is the canonical order of the nine framework steps. Priority
// ties resolve to the earliest entry in this list.
var stepNames = [StepCount]string{
	"Right Person, Right Role",
	"Expectations Are Clear & Confirmed",
	"Agreed Consequences for Missed Expectations",
	"Follow-Up Plan Locked In",
	"Course-Correct Quickly",
	"Show Up Consistently",
	"Clarify Before You Assume",
	"Celebrate What's Working",
	"Missed the Mark? Restart at Step 1",
}

// answerKeys maps catalog order to the answer field feeding each step.
var answerKeys = [StepCount]string{"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8", "q9"}

type StepScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Result is the full scoring breakdown for one answer set.
type Result struct {
	Steps    [StepCount]StepScore
	Total    float64
	Priority StepScore
}

// Score computes per-step scores, the total, and the priority step (the
// lowest-scoring step, first in canonical order on ties) from a raw answer
// map. Missing keys count as 0. Values are passed through unvalidated;
// range checks are the caller's concern.
func Score(answers map[string]float64) Result {
	var res Result
	for i, key := range answerKeys {
		res.Steps[i] = StepScore{Name: stepNames[i], Score: answers[key]}
		res.Total += answers[key]
	}

	res.Priority = res.Steps[0]
	for _, step := range res.Steps[1:] {
		if step.Score < res.Priority.Score {
			res.Priority = step
		}
	}

	return res
}

// BandFor classifies a percentage score into one of four qualitative bands.
// Thresholds are inclusive lower bounds evaluated high to low, so the
// function is total over any real input.
func BandFor(percentage float64) string {
	switch {
	case percentage >= 85:
		return "Exceptional Leadership - You demonstrate mastery across the accountability framework"
	case percentage >= 70:
		return "Strong Leadership - Good foundation with opportunities for targeted improvement"
	case percentage >= 55:
		return "Developing Leadership - Several areas need attention to increase effectiveness"
	default:
		return "Emerging Leadership - Significant development opportunities across the framework"
	}
}

// StepNames returns the canonical step order.
func StepNames() []string {
	return stepNames[:]
}
