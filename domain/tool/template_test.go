package tool_test

import (
	"testing"

	"github.com/SoSDylan/xVeinMiner/domain/item"
	"github.com/SoSDylan/xVeinMiner/domain/tool"
)

func TestMaterialTemplate_Matches(t *testing.T) {
	t.Parallel()

	template := tool.NewMaterialTemplate(item.MaterialDiamondPickaxe)

	tests := []struct {
		name  string
		stack item.Stack
		want  bool
	}{
		{
			name:  "same material",
			stack: item.NewStack(item.MaterialDiamondPickaxe),
			want:  true,
		},
		{
			name: "decoration is ignored",
			stack: item.Stack{
				Material: item.MaterialDiamondPickaxe,
				Amount:   1,
				Name:     "Excalibur",
				Lore:     []string{"Forged in fire"},
			},
			want: true,
		},
		{
			name:  "different material",
			stack: item.NewStack(item.MaterialIronPickaxe),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := template.Matches(tt.stack); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.stack, got, tt.want)
			}
		})
	}
}

func TestStackTemplate_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template tool.StackTemplate
		stack    item.Stack
		want     bool
	}{
		{
			name:     "material only, plain item",
			template: tool.NewStackTemplate(item.MaterialDiamondPickaxe, ""),
			stack:    item.NewStack(item.MaterialDiamondPickaxe),
			want:     true,
		},
		{
			name:     "unspecified name does not constrain",
			template: tool.NewStackTemplate(item.MaterialDiamondPickaxe, ""),
			stack:    item.Stack{Material: item.MaterialDiamondPickaxe, Amount: 1, Name: "Excalibur"},
			want:     true,
		},
		{
			name:     "specified name must equal",
			template: tool.NewStackTemplate(item.MaterialDiamondPickaxe, "Excalibur"),
			stack:    item.Stack{Material: item.MaterialDiamondPickaxe, Amount: 1, Name: "Excalibur"},
			want:     true,
		},
		{
			name:     "specified name, plain item",
			template: tool.NewStackTemplate(item.MaterialDiamondPickaxe, "Excalibur"),
			stack:    item.NewStack(item.MaterialDiamondPickaxe),
			want:     false,
		},
		{
			name:     "name comparison is case-sensitive",
			template: tool.NewStackTemplate(item.MaterialDiamondPickaxe, "Excalibur"),
			stack:    item.Stack{Material: item.MaterialDiamondPickaxe, Amount: 1, Name: "excalibur"},
			want:     false,
		},
		{
			name:     "specified lore must equal",
			template: tool.NewStackTemplate(item.MaterialDiamondPickaxe, "", "Forged in fire"),
			stack:    item.Stack{Material: item.MaterialDiamondPickaxe, Amount: 1, Lore: []string{"Forged in fire"}},
			want:     true,
		},
		{
			name:     "lore order matters",
			template: tool.NewStackTemplate(item.MaterialDiamondPickaxe, "", "a", "b"),
			stack:    item.Stack{Material: item.MaterialDiamondPickaxe, Amount: 1, Lore: []string{"b", "a"}},
			want:     false,
		},
		{
			name:     "wrong material fails regardless of decoration",
			template: tool.NewStackTemplate(item.MaterialDiamondPickaxe, "Excalibur"),
			stack:    item.Stack{Material: item.MaterialIronPickaxe, Amount: 1, Name: "Excalibur"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.template.Matches(tt.stack); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.stack, got, tt.want)
			}
		})
	}
}

func TestTemplate_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b tool.Template
		want bool
	}{
		{
			name: "material templates, same material",
			a:    tool.NewMaterialTemplate(item.MaterialIronAxe),
			b:    tool.NewMaterialTemplate(item.MaterialIronAxe),
			want: true,
		},
		{
			name: "material templates, different material",
			a:    tool.NewMaterialTemplate(item.MaterialIronAxe),
			b:    tool.NewMaterialTemplate(item.MaterialStoneAxe),
			want: false,
		},
		{
			name: "material vs stack template never equal",
			a:    tool.NewMaterialTemplate(item.MaterialIronAxe),
			b:    tool.NewStackTemplate(item.MaterialIronAxe, ""),
			want: false,
		},
		{
			name: "stack templates, full field equality",
			a:    tool.NewStackTemplate(item.MaterialIronAxe, "Cleaver", "line one"),
			b:    tool.NewStackTemplate(item.MaterialIronAxe, "Cleaver", "line one"),
			want: true,
		},
		{
			name: "stack templates, name differs by case",
			a:    tool.NewStackTemplate(item.MaterialIronAxe, "Cleaver"),
			b:    tool.NewStackTemplate(item.MaterialIronAxe, "cleaver"),
			want: false,
		},
		{
			name: "nil lore equals empty lore",
			a:    tool.StackTemplate{Material: item.MaterialIronAxe},
			b:    tool.StackTemplate{Material: item.MaterialIronAxe, Lore: []string{}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() is not symmetric: reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
