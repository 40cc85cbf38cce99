package state

// stage is the state interface. Transitions return the next state;
// disallowed transitions return the receiver unchanged.
type stage interface {
	// Name labels the stage for introspection.
	Name() string
	requestReview() stage
	approve() stage
	content(p *Post) string
}

// The concrete states carry no data, so single shared values suffice.
var (
	stageDraft     stage = draft{}
	stagePending   stage = pendingReview{}
	stagePublished stage = published{}
)

type draft struct{}

func (draft) Name() string         { return "draft" }
func (draft) requestReview() stage { return stagePending }
func (d draft) approve() stage     { return d }
func (draft) content(*Post) string { return "" }

type pendingReview struct{}

func (pendingReview) Name() string           { return "pending review" }
func (p pendingReview) requestReview() stage { return p }
func (pendingReview) approve() stage         { return stagePublished }
func (pendingReview) content(*Post) string   { return "" }

type published struct{}

func (published) Name() string           { return "published" }
func (p published) requestReview() stage { return p }
func (p published) approve() stage       { return p }
func (published) content(p *Post) string { return p.text }

// Post is the context: a piece of text working its way through the
// publishing workflow.
type Post struct {
	state stage
	text  string
}

// NewPost returns an empty post in draft.
func NewPost() *Post {
	return &Post{state: stageDraft}
}

// AddText appends text to the post body.
func (p *Post) AddText(text string) {
	p.text += text
}

// Content returns the post body as the current stage allows: empty
// until published.
func (p *Post) Content() string {
	return p.state.content(p)
}

// RequestReview moves a draft into review; elsewhere it is a no-op.
func (p *Post) RequestReview() {
	p.state = p.state.requestReview()
}

// Approve publishes a post under review; elsewhere it is a no-op.
func (p *Post) Approve() {
	p.state = p.state.approve()
}

// Stage reports the current workflow stage.
func (p *Post) Stage() string {
	return p.state.Name()
}
