package service

import (
	"testing"

	"class-hive/biz/application/dto/classroom"
)

func TestExactlyOneParent(t *testing.T) {
	tests := []struct {
		name string
		req  *classroom.UploadDocumentReq
		want bool
	}{
		{"assignment only", &classroom.UploadDocumentReq{AssignmentId: "a"}, true},
		{"submission only", &classroom.UploadDocumentReq{SubmissionId: "s"}, true},
		{"generation only", &classroom.UploadDocumentReq{GenerationId: "g"}, true},
		{"none", &classroom.UploadDocumentReq{}, false},
		{"assignment and submission", &classroom.UploadDocumentReq{AssignmentId: "a", SubmissionId: "s"}, false},
		{"all three", &classroom.UploadDocumentReq{AssignmentId: "a", SubmissionId: "s", GenerationId: "g"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exactlyOneParent(tt.req); got != tt.want {
				t.Errorf("exactlyOneParent() = %v, want %v", got, tt.want)
			}
		})
	}
}
