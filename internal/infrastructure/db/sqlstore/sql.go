package sqlstore

import "fmt"

// queries are rendered once per Repo because the table and date column are
// configurable.
type queries struct {
	records    string
	timestamps string
	dates      string
}

func buildQueries(d Dialect, table, dateCol string) queries {
	t := d.Quote(table)
	c := d.Quote(dateCol)

	return queries{
		records: fmt.Sprintf(`
SELECT %[1]s, happiness, sadness, anger, surprise, disgust, fear, neutral
FROM %[2]s
WHERE %[1]s >= %[3]s AND %[1]s < %[4]s
ORDER BY %[1]s ASC
`, c, t, d.Placeholder(1), d.Placeholder(2)),

		timestamps: fmt.Sprintf(`
SELECT %[1]s
FROM %[2]s
WHERE %[1]s >= %[3]s AND %[1]s < %[4]s
ORDER BY %[1]s ASC
`, c, t, d.Placeholder(1), d.Placeholder(2)),

		dates: fmt.Sprintf(`
SELECT DATE(%[1]s) AS d, COUNT(*) AS c
FROM %[2]s
WHERE %[1]s IS NOT NULL
GROUP BY DATE(%[1]s)
ORDER BY d DESC
LIMIT %[3]s
`, c, t, d.Placeholder(1)),
	}
}
