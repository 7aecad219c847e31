package employee

const (
	StatusProbationary = "Probationary"
	StatusRegular      = "Regular"
	StatusContractual  = "Contractual"

	DefaultOTRate      = 1.25
	DefaultHolidayRate = 2.0

	hoursPerWorkday = 8.0
)

var Statuses = []string{StatusProbationary, StatusRegular, StatusContractual}

func ValidStatus(status string) bool {
	for _, candidate := range Statuses {
		if status == candidate {
			return true
		}
	}
	return false
}
