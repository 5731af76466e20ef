package entity

import "testing"

func TestClassString(t *testing.T) {
	tests := []struct {
		class Class
		name  string
		id    string
	}{
		{ClassWarrior, "Warrior", "warrior"},
		{ClassWizard, "Wizard", "wizard"},
		{Class(9), "Unknown", "unknown"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.name {
			t.Errorf("Class(%d).String() = %q, want %q", tt.class, got, tt.name)
		}
		if got := tt.class.ID(); got != tt.id {
			t.Errorf("Class(%d).ID() = %q, want %q", tt.class, got, tt.id)
		}
	}
}

func TestParseClass(t *testing.T) {
	if c, err := ParseClass("wizard"); err != nil || c != ClassWizard {
		t.Errorf("ParseClass(wizard) = %v, %v", c, err)
	}
	if c, err := ParseClass(""); err != nil || c != ClassWarrior {
		t.Errorf("ParseClass(\"\") = %v, %v, want warrior default", c, err)
	}
	if _, err := ParseClass("bard"); err == nil {
		t.Error("ParseClass(bard) should fail")
	}
}

func TestNewCharacter(t *testing.T) {
	c := NewCharacter(ClassWizard, GenderFemale, 7, 5)

	if c.Face != 2 {
		t.Errorf("Face = %d, want 2 (wrapped)", c.Face)
	}
	if got := NewCharacter(ClassWizard, GenderFemale, -1, 5).Face; got != 4 {
		t.Errorf("Face(-1) = %d, want 4", got)
	}
	if got := NewCharacter(ClassWizard, GenderFemale, 3, 0).Face; got != 0 {
		t.Errorf("Face with no faces = %d, want 0", got)
	}
	if c.PointsLeft() != BonusPoints {
		t.Errorf("PointsLeft() = %d, want %d", c.PointsLeft(), BonusPoints)
	}
	for _, s := range AllStats {
		if c.Stats[s] != BaseStat {
			t.Errorf("Stats[%s] = %d, want %d", s, c.Stats[s], BaseStat)
		}
	}

	if NewCharacter(ClassWarrior, "other", 0, 5).Gender != GenderMale {
		t.Error("unknown gender should default to male")
	}
}

func TestAdjustStat(t *testing.T) {
	c := NewCharacter(ClassWarrior, GenderMale, 0, 5)

	if c.AdjustStat(StatStrength, -1) {
		t.Error("AdjustStat below base should fail")
	}
	if !c.AdjustStat(StatStrength, 2) {
		t.Fatal("AdjustStat(STR, +2) should succeed")
	}
	if c.AdjustStat(StatDexterity, 2) {
		t.Error("AdjustStat past the point pool should fail")
	}
	if !c.AdjustStat(StatDexterity, 1) {
		t.Fatal("AdjustStat(DEX, +1) should succeed")
	}
	if c.PointsLeft() != 0 {
		t.Errorf("PointsLeft() = %d, want 0", c.PointsLeft())
	}
	if !c.AdjustStat(StatStrength, -2) {
		t.Fatal("refunding STR should succeed")
	}
	if c.Stats[StatStrength] != BaseStat || c.PointsLeft() != 2 {
		t.Errorf("after refund STR = %d points = %d, want %d and 2", c.Stats[StatStrength], c.PointsLeft(), BaseStat)
	}
	if c.AdjustStat(Stat("LUCK"), 1) {
		t.Error("AdjustStat on unknown stat should fail")
	}
}
