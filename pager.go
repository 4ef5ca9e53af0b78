package optsearch

// DefaultPageSize is the fixed page size of the symbol search page.
const DefaultPageSize = 10

// Pager tracks a zero-based offset into a filtered result list in
// fixed-size pages. Navigation affordances are disablement predicates, not
// visibility toggles.
//
// Two quirks of the original site are preserved deliberately: the page
// count is floor(total/size)+1, so a total that is an exact multiple of the
// page size yields a trailing empty page; and the offset is never
// re-clamped downward when a filter change shrinks the result set, which
// can strand the view on an empty page with "previous" still enabled.
type Pager struct {
	Offset   int
	PageSize int
}

// NewPager returns a Pager at offset zero with the default page size.
func NewPager() *Pager {
	return &Pager{PageSize: DefaultPageSize}
}

// Next advances one page.
func (p *Pager) Next() {
	p.Offset += p.PageSize
}

// Prev moves back one page. It refuses to go below zero.
func (p *Pager) Prev() {
	if p.CanPrev() {
		p.Offset -= p.PageSize
	}
}

// Reset returns to the first page.
func (p *Pager) Reset() {
	p.Offset = 0
}

// CanPrev reports whether the previous-page affordance is enabled.
func (p *Pager) CanPrev() bool {
	return p.Offset > 0
}

// CanNext reports whether the next-page affordance is enabled for the given
// total match count.
func (p *Pager) CanNext(total int) bool {
	return p.Offset+p.PageSize <= total
}

// Page returns the current 1-based page number.
func (p *Pager) Page() int {
	return p.Offset/p.PageSize + 1
}

// Pages returns the 1-based page count for the given total match count.
func (p *Pager) Pages(total int) int {
	return total/p.PageSize + 1
}
