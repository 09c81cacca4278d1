package orderControllers

import "strconv"

const (
	defaultPage  = 1
	defaultLimit = 10
)

// pageParams turns page/limit query values into an SQL offset and limit.
// Missing or unusable values fall back to page 1, limit 10.
func pageParams(pageStr, limitStr string) (offset, limit int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return (page - 1) * limit, limit
}
