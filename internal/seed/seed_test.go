package seed

import (
	"reflect"
	"strings"
	"testing"

	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
)

func TestReadHospitals(t *testing.T) {
	t.Parallel()
	src := "병원명,마감일,상위노출지정일,색상\n" +
		"강남연세안과,25,\"17, 3\",#4F81BD\n" +
		"서초바른치과,20,,\n"

	hospitals, err := ReadHospitals(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadHospitals error: %v", err)
	}
	if len(hospitals) != 2 {
		t.Fatalf("got %d hospitals", len(hospitals))
	}
	if !reflect.DeepEqual(hospitals[0].SanwiNosulDays, []int32{3, 17}) || hospitals[0].BaseDueDay != 25 {
		t.Fatalf("unexpected hospital: %+v", hospitals[0])
	}
	if len(hospitals[1].SanwiNosulDays) != 0 || hospitals[1].Color != "" {
		t.Fatalf("unexpected hospital: %+v", hospitals[1])
	}
}

func TestReadHospitalsRejectsBadRows(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"missing column": "병원명,마감일\n강남,25\n",
		"bad due day":    "병원명,마감일,상위노출지정일,색상\n강남,32,,\n",
		"too many days":  "병원명,마감일,상위노출지정일,색상\n강남,25,\"1,2,3,4,5,6\",\n",
		"empty name":     "병원명,마감일,상위노출지정일,색상\n,25,,\n",
	}

	for name, src := range tests {
		if _, err := ReadHospitals(strings.NewReader(src)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestHolidays2026AreValidDates(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, h := range Holidays2026 {
		d, err := calendar.Parse(h.HolidayDate)
		if err != nil || d.Year() != 2026 {
			t.Fatalf("invalid holiday %+v", h)
		}
		if seen[h.HolidayDate] {
			t.Fatalf("duplicate holiday %s", h.HolidayDate)
		}
		seen[h.HolidayDate] = true
	}
	if len(Holidays2026) != 19 {
		t.Fatalf("got %d holidays", len(Holidays2026))
	}
}
