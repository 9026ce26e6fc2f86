package prefabs

import "testing"

func TestLoadLevelScript(t *testing.T) {
	placements, err := LoadLevelScript("level.tengo")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	if len(placements) != 9 {
		t.Fatalf("placements = %d, want 9", len(placements))
	}
	first := placements[0]
	if first.X != 10 || first.Z != -20 || first.Radius != 4 {
		t.Fatalf("first placement = %+v", first)
	}
	last := placements[8]
	if last.Z != -20+9*8 {
		t.Fatalf("last placement z = %v, want %v", last.Z, -20.0+9*8)
	}
}

func TestLoadLevelScriptMissing(t *testing.T) {
	if _, err := LoadLevelScript("nope.tengo"); err == nil {
		t.Fatalf("missing script should error")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"level.tengo", "scripts/level.tengo"},
		{"scripts/level.tengo", "scripts/level.tengo"},
		{"prefabs/scripts/level.tengo", "scripts/level.tengo"},
	}
	for _, c := range cases {
		if got := cleanScriptPath(c.in); got != c.want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"player.yaml", "player.yaml"},
		{"prefabs/player.yaml", "player.yaml"},
	}
	for _, c := range cases {
		if got := cleanPrefabPath(c.in); got != c.want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
