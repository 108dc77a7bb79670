package engine

import (
	"testing"

	"habitgrid/internal/models"
)

func TestNewBlockFormDefaults(t *testing.T) {
	e, _ := newTestEngine(t)
	f := e.NewBlockForm("2026-08-24")

	if f.Clock != "09:00" {
		t.Errorf("seeded time = %s, want 09:00", f.Clock)
	}
	if f.DurationMin != 30 {
		t.Errorf("seeded duration = %d, want 30", f.DurationMin)
	}
	if f.Title != "" || f.Notes != "" || f.BlockID != "" {
		t.Errorf("form not empty: %+v", f)
	}
	if f.Color == "" {
		t.Error("no default color seeded")
	}
}

func TestSaveFormRejectsEmptyTitle(t *testing.T) {
	e, _ := newTestEngine(t)
	before := len(e.BlocksFor("2026-08-24"))

	f := e.NewBlockForm("2026-08-24")
	f.Title = "   "
	if e.SaveForm(f) {
		t.Error("whitespace-only title was saved")
	}
	if got := len(e.BlocksFor("2026-08-24")); got != before {
		t.Errorf("event collection changed: %d -> %d blocks", before, got)
	}
}

func TestSaveFormRejectsBadClock(t *testing.T) {
	e, _ := newTestEngine(t)
	f := e.NewBlockForm("2026-08-24")
	f.Title = "Valid"
	f.Clock = "25:99"
	if e.SaveForm(f) {
		t.Error("unparseable time was saved")
	}
}

func TestSaveFormCreatesCustomBlock(t *testing.T) {
	e, _ := newTestEngine(t)
	f := e.NewBlockForm("2026-08-24")
	f.Title = "  Dentist  "
	f.Clock = "14:30"
	f.DurationMin = 2 // below minimum, clamps to 5
	f.Notes = "bring referral"

	if !e.SaveForm(f) {
		t.Fatal("valid form refused")
	}

	var got *models.ScheduledBlock
	for _, b := range e.BlocksFor("2026-08-24") {
		if b.Title == "Dentist" {
			b := b
			got = &b
		}
	}
	if got == nil {
		t.Fatal("block not created")
	}
	if got.Kind != models.BlockKindCustom {
		t.Errorf("kind = %s, want custom", got.Kind)
	}
	if got.StartMin != 870 {
		t.Errorf("StartMin = %d, want 870", got.StartMin)
	}
	if got.DurationMin != 5 {
		t.Errorf("duration = %d, want clamp to 5", got.DurationMin)
	}
	if got.Notes != "bring referral" {
		t.Errorf("notes = %q", got.Notes)
	}
}

func TestEditFormRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t)
	e.AddBlock("2026-08-24", models.ScheduledBlock{
		ID: "ed", Kind: models.BlockKindCustom, Title: "Review", StartMin: 660,
		DurationMin: 45, Color: "#aabbcc", Notes: "q3",
	})

	f, ok := e.EditBlockForm("2026-08-24", "ed")
	if !ok {
		t.Fatal("edit form refused for existing block")
	}
	if f.Title != "Review" || f.Clock != "11:00" || f.DurationMin != 45 || f.Notes != "q3" {
		t.Errorf("form not seeded from block: %+v", f)
	}

	f.Title = "Review v2"
	f.Clock = "12:15"
	if !e.SaveForm(f) {
		t.Fatal("edit save refused")
	}

	b, _ := e.BlockAt("2026-08-24", "ed")
	if b.Title != "Review v2" || b.StartMin != 735 {
		t.Errorf("patch not applied: %+v", b)
	}
	if b.Color != "#aabbcc" || b.Kind != models.BlockKindCustom {
		t.Errorf("untouched fields changed: %+v", b)
	}
	if got := len(e.BlocksFor("2026-08-24")); got != 3 {
		t.Errorf("edit created a duplicate: %d blocks", got)
	}
}

func TestEditFormMissingBlock(t *testing.T) {
	e, _ := newTestEngine(t)
	if _, ok := e.EditBlockForm("2026-08-24", "ghost"); ok {
		t.Error("edit form produced for missing block")
	}
}

func TestDeleteFromForm(t *testing.T) {
	e, _ := newTestEngine(t)
	e.AddBlock("2026-08-24", models.ScheduledBlock{
		ID: "del", Kind: models.BlockKindCustom, Title: "Gone", StartMin: 600, DurationMin: 30,
	})
	f, _ := e.EditBlockForm("2026-08-24", "del")

	e.DeleteFromForm(f)

	if _, ok := e.BlockAt("2026-08-24", "del"); ok {
		t.Error("block survived delete")
	}
}
