package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/indiepilot/internal/board"
)

// BoardRepo stores board posts and claims. It satisfies board.Repo.
type BoardRepo struct {
	db *sql.DB
}

// BoardRepo returns a board repository backed by this store.
func (s *Store) BoardRepo() *BoardRepo {
	return &BoardRepo{db: s.db}
}

const postColumns = `id, user_id, kind, title, detail, share_code, status, created_at`

// InsertPost adds a post to the board.
func (r *BoardRepo) InsertPost(p board.Post) error {
	_, err := r.db.Exec(
		`INSERT INTO board_post (`+postColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, string(p.Kind), p.Title, p.Detail, p.ShareCode,
		string(p.Status), p.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert board post: %w", err)
	}
	return nil
}

// PostByID returns one post by primary key.
func (r *BoardRepo) PostByID(id string) (board.Post, bool, error) {
	return r.onePost(`SELECT `+postColumns+` FROM board_post WHERE id = ?`, id)
}

// PostByShareCode returns one post by its share code.
func (r *BoardRepo) PostByShareCode(code string) (board.Post, bool, error) {
	return r.onePost(`SELECT `+postColumns+` FROM board_post WHERE share_code = ?`, code)
}

func (r *BoardRepo) onePost(query string, arg any) (board.Post, bool, error) {
	row := r.db.QueryRow(query, arg)
	p, err := scanPost(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return board.Post{}, false, nil
	}
	if err != nil {
		return board.Post{}, false, fmt.Errorf("read board post: %w", err)
	}
	return p, true, nil
}

// ShareCodeExists reports whether a share code is already taken.
func (r *BoardRepo) ShareCodeExists(code string) (bool, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM board_post WHERE share_code = ?`, code).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check share code: %w", err)
	}
	return n > 0, nil
}

// ListPosts returns posts newest first, optionally filtered by kind and
// status.
func (r *BoardRepo) ListPosts(kind board.Kind, status board.Status) ([]board.Post, error) {
	query := `SELECT ` + postColumns + ` FROM board_post`
	var conds []string
	var args []any
	if kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, string(kind))
	}
	if status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(status))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return r.queryPosts(query, args...)
}

// PostsByUser returns the user's posts, newest first.
func (r *BoardRepo) PostsByUser(userID string) ([]board.Post, error) {
	return r.queryPosts(
		`SELECT `+postColumns+` FROM board_post WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
}

func (r *BoardRepo) queryPosts(query string, args ...any) ([]board.Post, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query board posts: %w", err)
	}
	defer rows.Close()

	var posts []board.Post
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan board post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// SetPostStatus updates a post's lifecycle state.
func (r *BoardRepo) SetPostStatus(postID string, st board.Status) error {
	_, err := r.db.Exec(`UPDATE board_post SET status = ? WHERE id = ?`, string(st), postID)
	if err != nil {
		return fmt.Errorf("update post status: %w", err)
	}
	return nil
}

// InsertClaim records a claim, with the mock contact stored as JSON.
func (r *BoardRepo) InsertClaim(c board.Claim) error {
	contact, err := json.Marshal(c.Contact)
	if err != nil {
		return fmt.Errorf("encode contact: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO board_claim (id, post_id, user_id, mock_contact, claimed_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.PostID, c.UserID, string(contact), c.ClaimedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert board claim: %w", err)
	}
	return nil
}

// ClaimsByUser returns the user's claims, newest first.
func (r *BoardRepo) ClaimsByUser(userID string) ([]board.Claim, error) {
	rows, err := r.db.Query(
		`SELECT id, post_id, user_id, mock_contact, claimed_at
		 FROM board_claim WHERE user_id = ? ORDER BY claimed_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query board claims: %w", err)
	}
	defer rows.Close()

	var claims []board.Claim
	for rows.Next() {
		var c board.Claim
		var contact, claimedAt string
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &contact, &claimedAt); err != nil {
			return nil, fmt.Errorf("scan board claim: %w", err)
		}
		if err := json.Unmarshal([]byte(contact), &c.Contact); err != nil {
			return nil, fmt.Errorf("decode contact: %w", err)
		}
		if c.ClaimedAt, err = time.Parse(timeFormat, claimedAt); err != nil {
			return nil, fmt.Errorf("parse claimed_at: %w", err)
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// CountPostsByUser reports how many posts the user has created.
func (r *BoardRepo) CountPostsByUser(userID string) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM board_post WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// CountClaimsByUser reports how many posts the user has claimed.
func (r *BoardRepo) CountClaimsByUser(userID string) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM board_claim WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count claims: %w", err)
	}
	return n, nil
}

func scanPost(scan func(...any) error) (board.Post, error) {
	var p board.Post
	var kind, status, created string
	if err := scan(&p.ID, &p.UserID, &kind, &p.Title, &p.Detail, &p.ShareCode, &status, &created); err != nil {
		return board.Post{}, err
	}
	p.Kind = board.Kind(kind)
	p.Status = board.Status(status)

	var err error
	if p.CreatedAt, err = time.Parse(timeFormat, created); err != nil {
		return board.Post{}, fmt.Errorf("parse created_at: %w", err)
	}
	return p, nil
}
