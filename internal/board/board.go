// Package board implements the Youth Board: a privacy-first bulletin
// board where posts are exchanged through share codes and claiming a
// post reveals an anonymized contact instead of real personal data.
package board

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a board post.
type Kind string

const (
	KindStudy   Kind = "study"
	KindCarpool Kind = "carpool"
	KindSwap    Kind = "swap"
)

// ValidKind reports whether k names a real post kind.
func ValidKind(k Kind) bool {
	switch k {
	case KindStudy, KindCarpool, KindSwap:
		return true
	}
	return false
}

// Status is a post's lifecycle state.
type Status string

const (
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
)

var (
	ErrInvalidKind     = errors.New("invalid post kind")
	ErrPostUnavailable = errors.New("post not available for claiming")
)

// Post is one board entry.
type Post struct {
	ID        string
	UserID    string
	Kind      Kind
	Title     string
	Detail    string
	ShareCode string
	Status    Status
	CreatedAt time.Time
}

// Contact is the anonymized contact handed out on a claim.
type Contact struct {
	Name         string
	Grade        string
	School       string
	Email        string
	Availability string
}

// Claim records that a user claimed a post.
type Claim struct {
	ID        string
	PostID    string
	UserID    string
	Contact   Contact
	ClaimedAt time.Time
}

// mockContacts stand in for real contact exchange.
var mockContacts = []Contact{
	{Name: "Alex Chen", Grade: "11th", School: "Local High School", Email: "alex.chen@student.local", Availability: "Weekdays 3-6pm"},
	{Name: "Jordan Smith", Grade: "12th", School: "Local High School", Email: "jordan.smith@student.local", Availability: "Weekends 10am-2pm"},
	{Name: "Taylor Johnson", Grade: "10th", School: "Local High School", Email: "taylor.johnson@student.local", Availability: "After school daily"},
	{Name: "Casey Williams", Grade: "11th", School: "Local High School", Email: "casey.williams@student.local", Availability: "Evenings 7-9pm"},
	{Name: "Riley Brown", Grade: "12th", School: "Local High School", Email: "riley.brown@student.local", Availability: "Flexible schedule"},
}

// Repo is the board storage the service needs.
type Repo interface {
	InsertPost(p Post) error
	PostByID(id string) (Post, bool, error)
	PostByShareCode(code string) (Post, bool, error)
	ShareCodeExists(code string) (bool, error)
	// ListPosts filters by kind and status; zero values mean no filter.
	// Newest first.
	ListPosts(kind Kind, status Status) ([]Post, error)
	PostsByUser(userID string) ([]Post, error)
	SetPostStatus(postID string, st Status) error
	InsertClaim(c Claim) error
	ClaimsByUser(userID string) ([]Claim, error)
	CountPostsByUser(userID string) (int, error)
	CountClaimsByUser(userID string) (int, error)
}

// Stats summarizes the whole board.
type Stats struct {
	TotalPosts     int
	AvailablePosts int
	ClaimedPosts   int
	StudyPosts     int
	CarpoolPosts   int
	SwapPosts      int
}

// Service exposes board operations.
type Service struct {
	repo Repo
	now  func() time.Time
	intn func(n int) int
}

// NewService returns a board service over the given storage.
func NewService(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		intn: rand.IntN,
	}
}

const shareCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newShareCode builds a KIND-XXXX code, e.g. STUD-A9F4.
func (s *Service) newShareCode(kind Kind) string {
	prefix := strings.ToUpper(string(kind))
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = shareCodeAlphabet[s.intn(len(shareCodeAlphabet))]
	}
	return prefix + "-" + string(suffix)
}

// CreatePost adds a post to the board and returns its share code.
func (s *Service) CreatePost(userID string, kind Kind, title, detail string) (string, error) {
	if !ValidKind(kind) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	code := s.newShareCode(kind)
	for {
		exists, err := s.repo.ShareCodeExists(code)
		if err != nil {
			return "", fmt.Errorf("check share code: %w", err)
		}
		if !exists {
			break
		}
		code = s.newShareCode(kind)
	}

	post := Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Detail:    detail,
		ShareCode: code,
		Status:    StatusAvailable,
		CreatedAt: s.now(),
	}
	if err := s.repo.InsertPost(post); err != nil {
		return "", fmt.Errorf("insert post: %w", err)
	}
	return code, nil
}

// Posts lists board posts, optionally filtered by kind and status.
func (s *Service) Posts(kind Kind, status Status) ([]Post, error) {
	return s.repo.ListPosts(kind, status)
}

// PostByShareCode looks up a post by its share code.
func (s *Service) PostByShareCode(code string) (Post, bool, error) {
	return s.repo.PostByShareCode(code)
}

// ClaimPost claims an available post for the user and returns the
// anonymized contact attached to the claim.
func (s *Service) ClaimPost(userID, postID string) (Contact, error) {
	post, ok, err := s.repo.PostByID(postID)
	if err != nil {
		return Contact{}, fmt.Errorf("read post: %w", err)
	}
	if !ok || post.Status != StatusAvailable {
		return Contact{}, fmt.Errorf("%w: %s", ErrPostUnavailable, postID)
	}

	contact := mockContacts[s.intn(len(mockContacts))]
	claim := Claim{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    userID,
		Contact:   contact,
		ClaimedAt: s.now(),
	}
	if err := s.repo.InsertClaim(claim); err != nil {
		return Contact{}, fmt.Errorf("insert claim: %w", err)
	}
	if err := s.repo.SetPostStatus(postID, StatusClaimed); err != nil {
		return Contact{}, fmt.Errorf("mark post claimed: %w", err)
	}
	return contact, nil
}

// MyPosts lists the posts the user created, newest first.
func (s *Service) MyPosts(userID string) ([]Post, error) {
	return s.repo.PostsByUser(userID)
}

// MyClaims lists the posts the user claimed, newest first.
func (s *Service) MyClaims(userID string) ([]Claim, error) {
	return s.repo.ClaimsByUser(userID)
}

// Search returns posts whose title or detail contains the query,
// case-insensitive.
func (s *Service) Search(query string) ([]Post, error) {
	posts, err := s.repo.ListPosts("", "")
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var matched []Post
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Detail), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Stats summarizes board activity.
func (s *Service) Stats() (Stats, error) {
	posts, err := s.repo.ListPosts("", "")
	if err != nil {
		return Stats{}, err
	}
	var st Stats
	st.TotalPosts = len(posts)
	for _, p := range posts {
		switch p.Status {
		case StatusAvailable:
			st.AvailablePosts++
		case StatusClaimed:
			st.ClaimedPosts++
		}
		switch p.Kind {
		case KindStudy:
			st.StudyPosts++
		case KindCarpool:
			st.CarpoolPosts++
		case KindSwap:
			st.SwapPosts++
		}
	}
	return st, nil
}

// PostCount reports how many posts the user has created.
func (s *Service) PostCount(userID string) (int, error) {
	return s.repo.CountPostsByUser(userID)
}

// ClaimCount reports how many posts the user has claimed.
func (s *Service) ClaimCount(userID string) (int, error) {
	return s.repo.CountClaimsByUser(userID)
}

// CommunityScore scores board activity 0..100: 5 points per post
// created (max 50) plus 10 per claim (max 50).
func (s *Service) CommunityScore(userID string) (float64, error) {
	posts, err := s.PostCount(userID)
	if err != nil {
		return 0, err
	}
	claims, err := s.ClaimCount(userID)
	if err != nil {
		return 0, err
	}
	postScore := min(50.0, float64(posts)*5)
	claimScore := min(50.0, float64(claims)*10)
	return min(100.0, postScore+claimScore), nil
}
