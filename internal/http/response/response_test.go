package response

import (
	"errors"
	"testing"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		pageSize  int
		total     int64
		wantPages int64
		wantNext  bool
		wantPrev  bool
	}{
		{name: "first_of_three", page: 1, pageSize: 10, total: 25, wantPages: 3, wantNext: true, wantPrev: false},
		{name: "middle", page: 2, pageSize: 10, total: 25, wantPages: 3, wantNext: true, wantPrev: true},
		{name: "last_partial", page: 3, pageSize: 10, total: 25, wantPages: 3, wantNext: false, wantPrev: true},
		{name: "empty", page: 1, pageSize: 10, total: 0, wantPages: 0, wantNext: false, wantPrev: false},
		{name: "exact_fit", page: 2, pageSize: 10, total: 20, wantPages: 2, wantNext: false, wantPrev: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.pageSize, tc.total)
			if p.TotalPage != tc.wantPages {
				t.Fatalf("total_page: want %d, got %d", tc.wantPages, p.TotalPage)
			}
			if p.HasNext != tc.wantNext {
				t.Fatalf("has_next: want %v, got %v", tc.wantNext, p.HasNext)
			}
			if p.HasPrevious != tc.wantPrev {
				t.Fatalf("has_previous: want %v, got %v", tc.wantPrev, p.HasPrevious)
			}
		})
	}
}

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("record not found")
	appErr := WrapErrorKey(CodeNotFound, "error.post_not_found", "文章不存在", cause)

	if appErr.Key != "error.post_not_found" {
		t.Fatalf("key want error.post_not_found got %s", appErr.Key)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("wrapped error should unwrap to cause")
	}
	if appErr.Error() != "文章不存在: record not found" {
		t.Fatalf("unexpected error text: %s", appErr.Error())
	}

	bare := WrapError(CodeInternal, "内部错误", nil)
	if bare.Error() != "内部错误" {
		t.Fatalf("unexpected bare error text: %s", bare.Error())
	}
}
