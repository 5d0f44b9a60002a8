package auth

import "strconv"

func userIDString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseUserID(sub string) (uint, bool) {
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
