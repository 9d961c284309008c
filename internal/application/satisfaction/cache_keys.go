package satisfaction

import "fmt"

func cacheKeyDaily(date string) string {
	return fmt.Sprintf("daily:%s", date)
}

func cacheKeyMinute(date, clock string) string {
	return fmt.Sprintf("minute:%s:%s", date, clock)
}

func cacheKeyTimes(date string) string {
	return fmt.Sprintf("times:%s", date)
}
