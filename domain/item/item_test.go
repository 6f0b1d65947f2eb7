package item_test

import (
	"testing"

	"github.com/SoSDylan/xVeinMiner/domain/item"
)

func TestMaterialOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  item.Material
	}{
		{name: "already canonical", input: "DIAMOND_PICKAXE", want: item.MaterialDiamondPickaxe},
		{name: "lower case", input: "diamond_pickaxe", want: item.MaterialDiamondPickaxe},
		{name: "spaces become underscores", input: "diamond pickaxe", want: item.MaterialDiamondPickaxe},
		{name: "surrounding whitespace trimmed", input: "  iron_axe\n", want: item.MaterialIronAxe},
		{name: "unknown materials pass through", input: "copper_drill", want: item.Material("COPPER_DRILL")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := item.MaterialOf(tt.input); got != tt.want {
				t.Errorf("MaterialOf(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewStack(t *testing.T) {
	t.Parallel()

	s := item.NewStack(item.MaterialIronAxe)
	if s.Material != item.MaterialIronAxe {
		t.Errorf("Material = %q, want %q", s.Material, item.MaterialIronAxe)
	}
	if s.Amount != 1 {
		t.Errorf("Amount = %d, want 1", s.Amount)
	}
	if s.Name != "" || s.Lore != nil {
		t.Errorf("NewStack() should be undecorated, got name %q lore %v", s.Name, s.Lore)
	}
}

func TestStack_IsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stack item.Stack
		want  bool
	}{
		{name: "zero stack", stack: item.Stack{}, want: true},
		{name: "air", stack: item.NewStack(item.MaterialAir), want: true},
		{name: "zero amount", stack: item.Stack{Material: item.MaterialIronAxe}, want: true},
		{name: "negative amount", stack: item.Stack{Material: item.MaterialIronAxe, Amount: -1}, want: true},
		{name: "held tool", stack: item.NewStack(item.MaterialIronAxe), want: false},
		{name: "decorated tool", stack: item.Stack{Material: item.MaterialDiamondPickaxe, Amount: 1, Name: "Excalibur"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.stack.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
