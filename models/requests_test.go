package models

import (
	"testing"
	"time"
)

func TestScanSubmitRequestValidate(t *testing.T) {
	t.Parallel()

	req := ScanSubmitRequest{Selections: map[string][]string{
		CategoryGeneral: {"vivante"},
	}}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if req.Date.IsZero() {
		t.Fatalf("la date doit être renseignée par défaut")
	}

	bad := ScanSubmitRequest{Selections: map[string][]string{"astral": nil}}
	if err := bad.Validate(); err == nil {
		t.Fatalf("catégorie inconnue acceptée")
	}

	empty := ScanSubmitRequest{}
	if err := empty.Validate(); err == nil {
		t.Fatalf("scan sans catégorie accepté")
	}
}

func TestScanSubmitRequestNormalizesToUTC(t *testing.T) {
	t.Parallel()

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	req := ScanSubmitRequest{
		Date:       time.Date(2025, 3, 10, 9, 30, 0, 0, paris),
		Selections: map[string][]string{CategoryGeneral: nil},
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if req.Date.Location() != time.UTC {
		t.Fatalf("date=%v, attendu UTC", req.Date.Location())
	}
}

func TestGuestSessionRequestValidate(t *testing.T) {
	t.Parallel()

	ok := GuestSessionRequest{Name: "Claire", HDType: TypeReflector}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad := GuestSessionRequest{HDType: "licorne"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("type HD inconnu accepté")
	}
}

func TestReminderRequestValidate(t *testing.T) {
	t.Parallel()

	req := ReminderRequest{SendHour: 8, SendMinute: 30}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if req.Timezone != "Europe/Paris" {
		t.Fatalf("timezone=%q, attendu le fuseau par défaut", req.Timezone)
	}

	for _, bad := range []ReminderRequest{
		{SendHour: 24, SendMinute: 0},
		{SendHour: -1, SendMinute: 0},
		{SendHour: 8, SendMinute: 60},
		{SendHour: 8, SendMinute: 0, Timezone: "Lune/CratereNord"},
	} {
		if err := bad.Validate(); err == nil {
			t.Fatalf("rappel invalide accepté: %+v", bad)
		}
	}
}

func TestFeelingAppliesTo(t *testing.T) {
	t.Parallel()

	universal := Feeling{Name: "vivante"}
	if !universal.AppliesTo(TypeGenerator) || !universal.AppliesTo("") {
		t.Fatalf("un ressenti universel doit s'appliquer à tous les types")
	}

	specific := Feeling{Name: "attente de l'invitation", TypeHD: TypeProjector}
	if !specific.AppliesTo(TypeProjector) {
		t.Fatalf("le ressenti doit s'appliquer à son type")
	}
	if specific.AppliesTo(TypeGenerator) {
		t.Fatalf("le ressenti ne doit pas fuiter vers un autre type")
	}
}
