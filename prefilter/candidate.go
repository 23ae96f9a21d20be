package prefilter

// Candidate reports whether haystack contains at least one occurrence of
// this prefilter's literal(s), i.e. whether haystack is a candidate for a
// full match. It is the scan loop's per-line pre-check (SPEC_FULL.md
// §4.8): a false return lets the loop skip a line's formatter work without
// consulting the DFA; a true return carries no guarantee beyond "worth
// checking with the DFA".
//
// Every existing Find-based strategy answers this with a single probe
// from the start of the line.
func (p *memchrPrefilter) Candidate(line []byte) bool { return p.Find(line, 0) != -1 }
func (p *memmemPrefilter) Candidate(line []byte) bool { return p.Find(line, 0) != -1 }
func (t *Teddy) Candidate(line []byte) bool           { return t.Find(line, 0) != -1 }
func (t *FatTeddy) Candidate(line []byte) bool        { return t.Find(line, 0) != -1 }
func (p *DigitPrefilter) Candidate(line []byte) bool  { return p.Find(line, 0) != -1 }
func (t *Tracker) Candidate(line []byte) bool         { return t.Find(line, 0) != -1 }
func (tp *TrackedPrefilter) Candidate(line []byte) bool {
	return tp.Find(line, 0) != -1
}
