package ui

import "testing"

func TestMaterialButtonsGrid(t *testing.T) {
	buttons := materialButtons([]string{"sand", "stone", "water", "air"})
	if len(buttons) != 4 {
		t.Fatalf("expected 4 buttons, got %d", len(buttons))
	}
	if buttons[0].rect.Min.X != 4 || buttons[0].rect.Min.Y != 4 {
		t.Fatalf("first button at %v", buttons[0].rect.Min)
	}
	if buttons[1].rect.Min.Y != buttons[0].rect.Min.Y || buttons[1].rect.Min.X <= buttons[0].rect.Max.X-1 {
		t.Fatalf("second button must sit right of the first: %v %v", buttons[0].rect, buttons[1].rect)
	}
	if buttons[2].rect.Min.Y <= buttons[0].rect.Max.Y-1 {
		t.Fatalf("third button must start a new row: %v", buttons[2].rect)
	}
	for _, b := range buttons {
		if b.rect.Max.X > PanelWidth {
			t.Fatalf("button %s overflows the panel: %v", b.label, b.rect)
		}
	}
}

func TestHitButton(t *testing.T) {
	buttons := append(materialButtons([]string{"sand", "stone", "water"}), brushButtons(3)...)
	b, ok := hitButton(buttons, 10, 10)
	if !ok || b.material != "sand" {
		t.Fatalf("expected sand button hit, got %+v %v", b, ok)
	}
	b, ok = hitButton(buttons, buttons[1].rect.Min.X+1, buttons[1].rect.Min.Y+1)
	if !ok || b.material != "stone" {
		t.Fatalf("expected stone button hit, got %+v", b)
	}
	plus := buttons[len(buttons)-1]
	b, ok = hitButton(buttons, plus.rect.Min.X, plus.rect.Min.Y)
	if !ok || b.delta != 1 {
		t.Fatalf("expected + button hit, got %+v", b)
	}
	if _, ok := hitButton(buttons, 0, 0); ok {
		t.Fatal("panel corner is not a button")
	}
	minus := buttons[len(buttons)-2]
	if minus.rect.Overlaps(plus.rect) || minus.rect.Min.Y <= buttons[2].rect.Max.Y {
		t.Fatalf("brush buttons misplaced: %v %v", minus.rect, plus.rect)
	}
}
