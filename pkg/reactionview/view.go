// Package reactionview maintains a client-side view of a post's reaction
// summaries. Toggles are applied to the local view immediately using the same
// transition rule the server runs, then confirmed against an authoritative
// re-fetch or rolled back when the request fails. The local view is always
// provisional: it is never treated as final until a fresh server read
// confirms or supersedes it.
package reactionview

import (
	"context"
	"errors"
	"sync"
)

// ErrToggleInFlight is returned when a toggle is requested for a post while a
// previous toggle on the same view has not settled. Callers disable the
// control until the pending request resolves instead of racing two requests.
var ErrToggleInFlight = errors.New("a reaction toggle is already in flight for this post")

// Summary is the client copy of one per-kind aggregate.
type Summary struct {
	Kind  string   `json:"kind"`
	Count int      `json:"count"`
	Users []string `json:"users"`
}

// Client is the remote half the view talks to.
type Client interface {
	GetReactions(ctx context.Context, postID int64) ([]Summary, error)
	ToggleReaction(ctx context.Context, postID int64, kind string) error
}

// View holds the optimistic reaction state for a single post on behalf of a
// single principal. A fresh View is built per post mount, so abandoned state
// never leaks into a different post's page.
type View struct {
	client   Client
	username string
	postID   int64

	mu        sync.Mutex
	summaries []Summary
	inFlight  bool
}

// NewView creates a view for one post acting as the given username.
func NewView(client Client, username string, postID int64) *View {
	return &View{
		client:   client,
		username: username,
		postID:   postID,
	}
}

// Load replaces the local view with an authoritative server read.
func (v *View) Load(ctx context.Context) error {
	summaries, err := v.client.GetReactions(ctx, v.postID)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.summaries = summaries
	v.mu.Unlock()
	return nil
}

// Summaries returns a copy of the current local view.
func (v *View) Summaries() []Summary {
	v.mu.Lock()
	defer v.mu.Unlock()
	return cloneSummaries(v.summaries)
}

// Toggle applies the requested kind speculatively to the local view, issues
// the server call, and reconciles: on success the view is refreshed from an
// authoritative read, on failure the pre-toggle state is restored and the
// error returned once, with no automatic retry.
func (v *View) Toggle(ctx context.Context, kind string) error {
	v.mu.Lock()
	if v.inFlight {
		v.mu.Unlock()
		return ErrToggleInFlight
	}
	snapshot := cloneSummaries(v.summaries)
	v.summaries = applyToggle(cloneSummaries(v.summaries), v.username, kind)
	v.inFlight = true
	v.mu.Unlock()

	err := v.client.ToggleReaction(ctx, v.postID, kind)
	if err != nil {
		v.mu.Lock()
		v.summaries = snapshot
		v.inFlight = false
		v.mu.Unlock()
		return err
	}

	// The optimistic state could not predict concurrent reactions from other
	// users, so the confirmed state comes from a fresh read. If the refresh
	// itself fails the speculative state stays in place as provisional; the
	// toggle was accepted by the server.
	fresh, ferr := v.client.GetReactions(ctx, v.postID)

	v.mu.Lock()
	if ferr == nil {
		v.summaries = fresh
	}
	v.inFlight = false
	v.mu.Unlock()
	return nil
}

// applyToggle mirrors the server transition rule exactly: the user's prior
// reaction (if any) is removed, and the requested kind is added unless the
// prior reaction was already of that kind (toggle-off).
func applyToggle(summaries []Summary, username, kind string) []Summary {
	hadSameKind := false

	// remove the user's existing reaction wherever it is
	out := summaries[:0]
	for _, s := range summaries {
		idx := indexOf(s.Users, username)
		if idx >= 0 {
			if s.Kind == kind {
				hadSameKind = true
			}
			s.Users = append(s.Users[:idx], s.Users[idx+1:]...)
			s.Count--
		}
		if s.Count > 0 {
			out = append(out, s)
		}
	}

	if hadSameKind {
		return out
	}

	for i := range out {
		if out[i].Kind == kind {
			out[i].Users = append(out[i].Users, username)
			out[i].Count++
			return out
		}
	}
	return append(out, Summary{Kind: kind, Count: 1, Users: []string{username}})
}

func indexOf(users []string, username string) int {
	for i, u := range users {
		if u == username {
			return i
		}
	}
	return -1
}

func cloneSummaries(summaries []Summary) []Summary {
	out := make([]Summary, len(summaries))
	for i, s := range summaries {
		users := make([]string, len(s.Users))
		copy(users, s.Users)
		out[i] = Summary{Kind: s.Kind, Count: s.Count, Users: users}
	}
	return out
}
