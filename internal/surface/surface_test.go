package surface

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/ouraface/internal/layout"
)

func TestScene_IgnoresUncreated(t *testing.T) {
	t.Parallel()

	s := NewScene()
	s.SetText(layout.ElementTime, "09:41")
	if _, ok := s.Node(layout.ElementTime); ok {
		t.Fatal("setter created a node")
	}

	s.Create(layout.ElementTime)
	s.SetText(layout.ElementTime, "09:41")
	n, ok := s.Node(layout.ElementTime)
	if !ok || n.Text != "09:41" {
		t.Errorf("Node() = %+v, %v", n, ok)
	}
}

func TestScene_VisibleOrder(t *testing.T) {
	t.Parallel()

	s := NewScene()
	for _, e := range []layout.Element{layout.ElementOverlay, layout.ElementDate, layout.ElementTime} {
		s.Create(e)
	}
	s.SetHidden(layout.ElementDate, true)

	want := []layout.Element{layout.ElementTime, layout.ElementOverlay}
	if diff := cmp.Diff(want, s.Visible()); diff != "" {
		t.Errorf("Visible() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecording_Audit(t *testing.T) {
	t.Parallel()

	r := NewRecording()
	r.Create(layout.ElementDate)
	r.SetTextColor(layout.ElementDate, color.RGBA{R: 0xFF, G: 0x55, B: 0x00, A: 0xFF})
	r.SetWindowBackground(nil)

	want := []string{
		"create date",
		"color date #FF5500",
		"window none",
	}
	if diff := cmp.Diff(want, r.Audit()); diff != "" {
		t.Errorf("Audit() mismatch (-want +got):\n%s", diff)
	}

	r.ResetAudit()
	if len(r.Audit()) != 0 {
		t.Error("ResetAudit() kept entries")
	}
}
