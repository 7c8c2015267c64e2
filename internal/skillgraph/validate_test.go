package skillgraph

import (
	"strings"
	"testing"
)

func validSkill(id string, prereqs ...string) Skill {
	return Skill{
		ID:            id,
		Title:         "Skill " + id,
		Difficulty:    1,
		Category:      "test",
		XP:            10,
		Prerequisites: prereqs,
	}
}

func TestValidateSkills_Valid(t *testing.T) {
	skills := []Skill{
		validSkill("a"),
		validSkill("b", "a"),
		validSkill("c", "a", "b"),
	}
	if err := validateSkills(skills); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateSkills_DuplicateID(t *testing.T) {
	skills := []Skill{
		validSkill("a"),
		validSkill("a"),
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for duplicate ID")
	}
	if !strings.Contains(err.Error(), "duplicate skill ID") {
		t.Errorf("error %q does not mention duplicate ID", err)
	}
}

func TestValidateSkills_DanglingPrerequisite(t *testing.T) {
	skills := []Skill{
		validSkill("a"),
		validSkill("b", "missspelled"),
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite")
	}
	if !strings.Contains(err.Error(), "nonexistent prerequisite") {
		t.Errorf("error %q does not mention the dangling reference", err)
	}
}

func TestValidateSkills_SelfPrerequisite(t *testing.T) {
	skills := []Skill{
		validSkill("a"),
		validSkill("b", "b"),
	}
	if err := validateSkills(skills); err == nil {
		t.Fatal("expected error for self-referencing prerequisite")
	}
}

func TestValidateSkills_Cycle(t *testing.T) {
	skills := []Skill{
		validSkill("root"),
		validSkill("a", "b"),
		validSkill("b", "c"),
		validSkill("c", "a"),
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for cycle")
	}
	if !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("error %q does not mention the cycle", err)
	}
}

func TestValidateSkills_NoRoot(t *testing.T) {
	skills := []Skill{
		validSkill("a", "b"),
		validSkill("b", "a"),
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error when no skill is a root")
	}
	if !strings.Contains(err.Error(), "no root skills") {
		t.Errorf("error %q does not mention missing roots", err)
	}
}

func TestValidateSkills_DifficultyRange(t *testing.T) {
	s := validSkill("a")
	s.Difficulty = 4
	err := validateSkills([]Skill{s})
	if err == nil {
		t.Fatal("expected error for out-of-range difficulty")
	}
	if !strings.Contains(err.Error(), "difficulty") {
		t.Errorf("error %q does not mention difficulty", err)
	}
}

func TestValidate_EmbeddedCatalog(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("embedded catalog failed validation: %v", err)
	}
}
