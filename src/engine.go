package mim

// Context is the per-conversion mutable state:
// an uncommitted preedit buffer, a cursor into it, the accumulating
// committed output, integer variables, and the currently active state.
// A fresh Context is allocated for every Convert call; nothing about it
// is shared across calls or across goroutines.
type Context struct {
	preedit      []rune
	cursor       int
	committed    []rune
	variables    map[string]int64
	currentState string
	cfg          EngineConfig
}

func newContext(initialState string, cfg EngineConfig) *Context {
	return &Context{
		variables:    make(map[string]int64),
		currentState: initialState,
		cfg:          cfg,
	}
}

// Insert inserts s into preedit at cursor; the cursor advances by the
// number of code points inserted.
func (c *Context) Insert(s string) {
	for _, r := range s {
		c.InsertRune(r)
	}
}

// InsertRune inserts a single scalar at cursor and advances the cursor.
func (c *Context) InsertRune(r rune) {
	c.preedit = append(c.preedit, 0)
	copy(c.preedit[c.cursor+1:], c.preedit[c.cursor:])
	c.preedit[c.cursor] = r
	c.cursor++
}

// resolvePosition turns a signed relative-or-symbolic position argument
// into an absolute preedit index in [0, len(preedit)], per the table in
// symbolic positional shortcuts (@<, @>, @-, @+) and relative offsets.
func (c *Context) resolvePosition(p position) int {
	switch p.kind {
	case posStart:
		return 0
	case posEnd:
		return len(c.preedit)
	case posLeft:
		return max0(c.cursor - 1)
	case posRight:
		return minLen(c.cursor+1, len(c.preedit))
	default: // posRelative
		if p.k < 0 {
			return max0(c.cursor + p.k)
		}
		return minLen(c.cursor+p.k, len(c.preedit))
	}
}

// Delete removes preedit between cursor and the resolved position p, per
// the resolved position: deletes [p,cursor) if p<cursor,
// [cursor,p) if p>cursor, no-op if equal.
func (c *Context) Delete(p position) {
	target := c.resolvePosition(p)
	switch {
	case target < c.cursor:
		c.preedit = append(c.preedit[:target], c.preedit[c.cursor:]...)
		c.cursor = target
	case target > c.cursor:
		c.preedit = append(c.preedit[:c.cursor], c.preedit[target:]...)
	}
}

// Move sets the cursor to the resolved position p.
func (c *Context) Move(p position) {
	c.cursor = c.resolvePosition(p)
}

// charAt implements the eval char-at-offset rule: k=0 is the
// unused surrounding-text sentinel (-1); k<0 looks left of cursor; k>0
// looks at cursor+k-1; out-of-range yields 0.
func (c *Context) charAt(k int) int64 {
	if k == 0 {
		return -1
	}
	var idx int
	if k < 0 {
		offset := -k
		if offset > c.cursor {
			return 0
		}
		idx = c.cursor - offset
	} else {
		idx = c.cursor + (k - 1)
	}
	if idx < 0 || idx >= len(c.preedit) {
		return 0
	}
	return int64(c.preedit[idx])
}

// Commit appends preedit to committed (NFC-normalized when configured),
// clears preedit, and resets the cursor to 0.
func (c *Context) Commit() {
	if len(c.preedit) == 0 {
		return
	}
	s := string(c.preedit)
	if c.cfg.NormalizeOutput {
		s = normalizeCommit(s)
	}
	c.committed = append(c.committed, []rune(s)...)
	c.preedit = c.preedit[:0]
	c.cursor = 0
}

// CommitAndEmit commits any preedit, then appends r verbatim — used for
// the pass-through fallback in Convert.
func (c *Context) CommitAndEmit(r rune) {
	c.Commit()
	c.committed = append(c.committed, r)
}

func (c *Context) setVar(name string, value int64) { c.variables[name] = value }
func (c *Context) getVar(name string) int64        { return c.variables[name] }

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func minLen(v, l int) int {
	if v > l {
		return l
	}
	return v
}

// Instance is a compiled MIM document ready to convert input. Only
// SetLogger modifies it after New/NewWithConfig return; Convert may be
// called by any number of concurrent callers, since every Convert call
// allocates its own Context.
type Instance struct {
	im  *CompiledIM
	cfg EngineConfig
}

// New parses and compiles a MIM document with default engine settings.
// It never fails: a malformed document yields an Instance with empty
// metadata and no maps or states, which behaves as pass-through for
// every input.
func New(documentText string) *Instance {
	return NewWithConfig(documentText, DefaultEngineConfig())
}

// NewWithConfig parses and compiles a MIM document with an explicit
// EngineConfig (e.g. a non-default MaxKeyseqLength or an attached
// Logger).
func NewWithConfig(documentText string, cfg EngineConfig) *Instance {
	if cfg.MaxKeyseqLength <= 0 {
		cfg.MaxKeyseqLength = defaultMaxKeyseqLength
	}
	if cfg.Logger == nil {
		cfg.Logger = DiscardLogger{}
	}
	doc := Read(documentText)
	im := Load(doc, cfg.Logger)
	return &Instance{im: im, cfg: cfg}
}

// SetLogger swaps the diagnostic sink used for subsequent Convert calls.
func (in *Instance) SetLogger(logger Logger) {
	if logger == nil {
		logger = DiscardLogger{}
	}
	in.cfg.Logger = logger
}

func (in *Instance) Language() string    { return in.im.Lang }
func (in *Instance) Name() string        { return in.im.Name }
func (in *Instance) Title() string       { return in.im.Title }
func (in *Instance) Description() string { return in.im.Description }

// Convert returns the committed output for one independent conversion of
// input. Each call is a pure function
// of (Instance, input): a fresh Context is constructed, nothing from one
// call is visible to the next.
func (in *Instance) Convert(input string) string {
	ctx := newContext(in.im.initialStateName(), in.cfg)
	runes := []rune(input)

	for i := 0; i < len(runes); {
		n := in.step(ctx, runes[i:])
		if n > 0 {
			i += n
			continue
		}
		ctx.CommitAndEmit(runes[i])
		i++
	}
	ctx.Commit()
	return string(ctx.committed)
}

// step executes one round of the longest-match keyseq matcher for the
// current state against tail. It
// returns the number of input characters consumed, or 0 if no branch in
// the current state matched.
func (in *Instance) step(ctx *Context, tail []rune) int {
	state, ok := in.im.stateIndex(ctx.currentState)
	if !ok {
		return 0
	}

	for _, branch := range state.Branches {
		table, ok := in.im.Maps[branch.MapName]
		if !ok {
			continue
		}
		length, mapActions, matched := table.LongestMatch(tail, in.cfg.MaxKeyseqLength)
		if !matched {
			continue
		}
		in.executeActionList(ctx, mapActions)
		for _, action := range branch.TrailingActions {
			in.executeAction(ctx, action)
		}
		return length
	}
	return 0
}
