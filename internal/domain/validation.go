package domain

import (
	"net/url"
	"strings"
)

// NormalizeNewFriend trims the add-friend fields and reports ErrIncompleteFriend
// when either one ends up empty.
func NormalizeNewFriend(name, image string) (string, string, error) {
	name = strings.TrimSpace(name)
	image = strings.TrimSpace(image)

	if name == "" || image == "" {
		return "", "", ErrIncompleteFriend
	}

	return name, image, nil
}

// AvatarURL tags an image URI with the friend id so placeholder avatar
// services return a distinct picture per friend.
func AvatarURL(image, id string) string {
	sep := "?"
	if strings.Contains(image, "?") {
		sep = "&"
	}
	return image + sep + "u=" + url.QueryEscape(id)
}
