package service

import (
	"errors"
	"testing"

	"class-hive/biz/infrastructure/consts"
)

func TestDecodePaper(t *testing.T) {
	data := map[string]any{
		"title": "Physics Mid-Term",
		"questions": []any{
			map[string]any{
				"question": "What is Newton's second law?",
				"answer":   "F = ma",
				"marks":    float64(5),
			},
			map[string]any{
				"question":    "Which planet is largest?",
				"options":     map[string]any{"a": "Mars", "b": "Jupiter"},
				"answer":      "b",
				"explanation": "Jupiter is the largest planet.",
				"marks":       "10",
			},
		},
	}

	paper, err := decodePaper(data)
	if err != nil {
		t.Fatalf("decodePaper() error = %v", err)
	}
	if paper.Title != "Physics Mid-Term" {
		t.Errorf("title = %q", paper.Title)
	}
	if len(paper.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(paper.Questions))
	}
	if paper.Questions[0].Marks != 5 {
		t.Errorf("marks from float64 = %d, want 5", paper.Questions[0].Marks)
	}
	if paper.Questions[1].Marks != 10 {
		t.Errorf("marks from string = %d, want 10", paper.Questions[1].Marks)
	}
	if paper.Questions[1].Options["b"] != "Jupiter" {
		t.Errorf("options[b] = %q", paper.Questions[1].Options["b"])
	}
}

func TestGradeResult(t *testing.T) {
	resp, err := gradeResult(map[string]any{
		"code": float64(0),
		"data": map[string]any{"marks": "7", "feedback": "solid answer"},
	})
	if err != nil {
		t.Fatalf("gradeResult() error = %v", err)
	}
	if resp.Marks != 7 {
		t.Errorf("marks = %d, want 7", resp.Marks)
	}
	if resp.Feedback != "solid answer" {
		t.Errorf("feedback = %q", resp.Feedback)
	}

	tests := []struct {
		name string
		ret  map[string]any
	}{
		{"non-zero code", map[string]any{"code": float64(1), "msg": "model unavailable"}},
		{"missing data", map[string]any{"code": float64(0)}},
		{"data not an object", map[string]any{"code": float64(0), "data": "oops"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := gradeResult(tt.ret); !errors.Is(err, consts.ErrGradeAnswer) {
				t.Errorf("gradeResult() = %v, want %v", err, consts.ErrGradeAnswer)
			}
		})
	}
}

func TestDecodePaperRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{"nil", nil},
		{"not a map", "plain string"},
		{"no questions", map[string]any{"title": "Empty"}},
		{"empty questions", map[string]any{"title": "Empty", "questions": []any{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodePaper(tt.data); err == nil {
				t.Error("decodePaper() expected an error")
			}
		})
	}
}
