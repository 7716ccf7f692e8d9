// README: User account and daily usage profile models.
package user

type User struct {
	ID       int64  `json:"userId"`
	Name     string `json:"name"`
	HomePlan string `json:"homePlan"`
}

type UsageProfile struct {
	UserID      int64 `json:"userId"`
	AvgDailyMB  int   `json:"avgDailyMb"`
	AvgDailyMin int   `json:"avgDailyMin"`
	AvgDailySMS int   `json:"avgDailySms"`
}
