// Package export renders generated timetables into downloadable formats.
package export

import "strconv"

// TimetableRow is one assignment resolved against the entity catalog,
// flattened for tabular output.
type TimetableRow struct {
	CourseCode    string `csv:"course_code"`
	CourseName    string `csv:"course_name"`
	Professor     string `csv:"professor"`
	Room          string `csv:"room"`
	Day           string `csv:"day"`
	Time          string `csv:"time"`
	SessionNumber int    `csv:"session"`
}

// Headers in the column order rows are rendered.
var timetableHeaders = []string{"Course Code", "Course Name", "Professor", "Room", "Day", "Time", "Session"}

func (r TimetableRow) cells() []string {
	return []string{
		r.CourseCode,
		r.CourseName,
		r.Professor,
		r.Room,
		r.Day,
		r.Time,
		strconv.Itoa(r.SessionNumber),
	}
}
