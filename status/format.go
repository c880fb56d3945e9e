package status

import "strconv"

func formatInt(key string, v int64) string {
	return key + "=" + strconv.FormatInt(v, 10)
}

func formatFloat(key string, v float64) string {
	return key + "=" + strconv.FormatFloat(v, 'f', 3, 64)
}
