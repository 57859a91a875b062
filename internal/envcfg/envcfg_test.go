package envcfg

import "testing"

func TestPositiveInt_Fallback(t *testing.T) {
	t.Parallel()
	n, err := PositiveInt("SIDE_QUEST_TEST_UNSET_XYZ", 4)
	if err != nil || n != 4 {
		t.Fatalf("PositiveInt = %d, %v, want 4, nil", n, err)
	}
}

func TestPositiveInt_ValidOverride(t *testing.T) {
	t.Setenv("SIDE_QUEST_TEST_VAR", "7")
	n, err := PositiveInt("SIDE_QUEST_TEST_VAR", 4)
	if err != nil || n != 7 {
		t.Fatalf("PositiveInt = %d, %v, want 7, nil", n, err)
	}
}

func TestPositiveInt_ZeroRejected(t *testing.T) {
	t.Setenv("SIDE_QUEST_TEST_VAR", "0")
	_, err := PositiveInt("SIDE_QUEST_TEST_VAR", 4)
	if err == nil {
		t.Fatal("PositiveInt(0) = nil error, want error")
	}
}

func TestPositiveInt_NegativeRejected(t *testing.T) {
	t.Setenv("SIDE_QUEST_TEST_VAR", "-3")
	_, err := PositiveInt("SIDE_QUEST_TEST_VAR", 4)
	if err == nil {
		t.Fatal("PositiveInt(-3) = nil error, want error")
	}
}

func TestPositiveInt_NaNRejected(t *testing.T) {
	t.Setenv("SIDE_QUEST_TEST_VAR", "banana")
	_, err := PositiveInt("SIDE_QUEST_TEST_VAR", 4)
	if err == nil {
		t.Fatal("PositiveInt(banana) = nil error, want error")
	}
}

func TestKillSwitches_ReadEveryCall(t *testing.T) {
	if NoDetection() {
		t.Fatal("NoDetection() = true before env set")
	}
	t.Setenv(EnvNoDetection, "1")
	if !NoDetection() {
		t.Fatal("NoDetection() = false after env set")
	}
}
