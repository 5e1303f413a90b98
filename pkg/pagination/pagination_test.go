package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	p := Params{}.Normalize()
	if p.PageNum != 1 || p.PageSize != 10 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestNormalizeClampsPageSize(t *testing.T) {
	p := Params{PageNum: 2, PageSize: 1000}.Normalize()
	if p.PageSize != 100 {
		t.Fatalf("page size not clamped: %d", p.PageSize)
	}
	if p.PageNum != 2 {
		t.Fatalf("page num changed: %d", p.PageNum)
	}
}

func TestOffset(t *testing.T) {
	cases := []struct {
		pageNum, pageSize int64
		want              int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{5, 20, 80},
	}
	for _, c := range cases {
		p := Params{PageNum: c.pageNum, PageSize: c.pageSize}
		if got := p.Offset(); got != c.want {
			t.Errorf("Offset(%d,%d) = %d, want %d", c.pageNum, c.pageSize, got, c.want)
		}
	}
}

func TestNewMetaTotalPages(t *testing.T) {
	cases := []struct {
		total, pageSize, wantPages int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 20, 5},
	}
	for _, c := range cases {
		m := NewMeta(c.total, Params{PageNum: 1, PageSize: c.pageSize})
		if m.TotalPages != c.wantPages {
			t.Errorf("total=%d size=%d: got %d pages, want %d", c.total, c.pageSize, m.TotalPages, c.wantPages)
		}
	}
}

func TestValidateRejectsNegative(t *testing.T) {
	if err := (Params{PageNum: -1, PageSize: 10}).Validate(); err == nil {
		t.Fatal("negative page_num accepted")
	}
	if err := (Params{PageNum: 1, PageSize: -5}).Validate(); err == nil {
		t.Fatal("negative page_size accepted")
	}
	if err := (Params{PageNum: 3, PageSize: 25}).Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}
}

func TestValidateAcceptsUnsetZero(t *testing.T) {
	// zero is an unset form value, not a request for page zero
	if err := (Params{}).Validate(); err != nil {
		t.Fatalf("unset params rejected: %v", err)
	}
	if p := (Params{}).Normalize(); p.PageNum != 1 || p.PageSize != 10 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}
