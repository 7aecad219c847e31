package employee

import "testing"

func TestCreateInputDefaults(t *testing.T) {
	in := CreateInput{Name: "Ana", DailyRate: 640}.withDefaults(StandardRateDefaults())

	if in.Status != StatusProbationary {
		t.Fatalf("expected default status %s, got %s", StatusProbationary, in.Status)
	}
	if in.HourlyRate != 80 {
		t.Fatalf("expected hourly rate 80 (daily/8), got %v", in.HourlyRate)
	}
	if in.OTRate != DefaultOTRate {
		t.Fatalf("expected OT rate %v, got %v", DefaultOTRate, in.OTRate)
	}
	if in.HolidayRate != DefaultHolidayRate {
		t.Fatalf("expected holiday rate %v, got %v", DefaultHolidayRate, in.HolidayRate)
	}
}

func TestCreateInputConfiguredDefaults(t *testing.T) {
	configured := RateDefaults{OTRate: 1.5, HolidayRate: 2.6}
	in := CreateInput{Name: "Ana", DailyRate: 640}.withDefaults(configured)

	if in.OTRate != 1.5 {
		t.Fatalf("expected configured OT rate 1.5, got %v", in.OTRate)
	}
	if in.HolidayRate != 2.6 {
		t.Fatalf("expected configured holiday rate 2.6, got %v", in.HolidayRate)
	}
}

func TestNewServiceFillsZeroDefaults(t *testing.T) {
	svc := NewService(nil, RateDefaults{})
	if svc.defaults.OTRate != DefaultOTRate || svc.defaults.HolidayRate != DefaultHolidayRate {
		t.Fatalf("expected standard fallbacks, got %+v", svc.defaults)
	}
}

func TestCreateInputKeepsExplicitRates(t *testing.T) {
	in := CreateInput{DailyRate: 640, HourlyRate: 100, OTRate: 1.5, HolidayRate: 1.3, Status: StatusRegular}.withDefaults(StandardRateDefaults())

	if in.HourlyRate != 100 {
		t.Fatalf("explicit hourly rate overwritten: %v", in.HourlyRate)
	}
	if in.OTRate != 1.5 || in.HolidayRate != 1.3 {
		t.Fatalf("explicit multipliers overwritten: %v / %v", in.OTRate, in.HolidayRate)
	}
	if in.Status != StatusRegular {
		t.Fatalf("explicit status overwritten: %s", in.Status)
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range Statuses {
		if !ValidStatus(status) {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if ValidStatus("Resigned") {
		t.Fatal("expected unknown status to be invalid")
	}
}
