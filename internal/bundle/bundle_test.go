package bundle

import "testing"

func TestAssemble(t *testing.T) {
	tests := []struct {
		name     string
		trees    string
		contents string
		treeOnly bool
		want     string
	}{
		{"full bundle", "tree\n", "content\n", false, "tree\n\ncontent\n"},
		{"tree only drops contents", "tree\n", "content\n", true, "tree\n"},
		{"tree only equals trees exactly", "tree\n", "", true, "tree\n"},
		{"empty trees", "", "content\n", false, "content\n"},
		{"everything empty", "", "", false, ""},
		{"empty contents joins nothing", "tree\n", "", false, "tree\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.trees, tt.contents, tt.treeOnly)
			if got != tt.want {
				t.Errorf("Assemble = %q, want %q", got, tt.want)
			}
		})
	}
}
