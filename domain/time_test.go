package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimeUnmarshalMixedFormats(t *testing.T) {
	cases := map[string]string{
		"rfc3339":            `"2024-05-01T10:30:00Z"`,
		"jvm local datetime": `"2024-05-01T10:30:00"`,
		"jvm with fraction":  `"2024-05-01T10:30:00.123456"`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var ts Time
			if err := json.Unmarshal([]byte(raw), &ts); err != nil {
				t.Fatalf("unmarshal %s: %v", raw, err)
			}
			if ts.Year() != 2024 || ts.Month() != time.May || ts.Hour() != 10 {
				t.Errorf("unexpected time %v", ts.Time)
			}
		})
	}

	var ts Time
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil || !ts.IsZero() {
		t.Errorf("null must decode to zero time, got %v err %v", ts.Time, err)
	}
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("expected error for unrecognized timestamp")
	}
}

func TestPostUnmarshalAndLikeHelpers(t *testing.T) {
	raw := `{"id":5,"content":"hello","userId":9,"createdAt":"2024-05-01T10:30:00","likedByUserIds":[1,9]}`

	var post Post
	if err := json.Unmarshal([]byte(raw), &post); err != nil {
		t.Fatalf("unmarshal post: %v", err)
	}
	if post.ID != 5 || post.AuthorID != 9 {
		t.Errorf("unexpected post %+v", post)
	}
	if post.LikesCount() != 2 {
		t.Errorf("expected 2 likes, got %d", post.LikesCount())
	}
	if !post.LikedBy(9) || post.LikedBy(3) {
		t.Error("LikedBy must reflect the id list")
	}
}
