package profile

import "strconv"

func jsonID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
