package page

import (
	"testing"

	"class-hive/biz/application/dto/basic"
)

func ptr(v int64) *int64 { return &v }

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		opts     *basic.PaginationOptions
		wantPage int64
		wantSize int64
	}{
		{"nil options", nil, 1, 10},
		{"empty options", &basic.PaginationOptions{}, 1, 10},
		{"both set", &basic.PaginationOptions{Page: ptr(3), Limit: ptr(25)}, 3, 25},
		{"page only", &basic.PaginationOptions{Page: ptr(2)}, 2, 10},
		{"limit only", &basic.PaginationOptions{Limit: ptr(5)}, 1, 5},
		{"zero page ignored", &basic.PaginationOptions{Page: ptr(0)}, 1, 10},
		{"negative limit ignored", &basic.PaginationOptions{Limit: ptr(-1)}, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := Parse(tt.opts)
			if page != tt.wantPage || size != tt.wantSize {
				t.Errorf("Parse() = (%d, %d), want (%d, %d)", page, size, tt.wantPage, tt.wantSize)
			}
		})
	}
}
