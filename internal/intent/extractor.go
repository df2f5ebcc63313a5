// Package intent: labelled-numeral parameter extraction.
package intent

import (
	"regexp"
	"strconv"
)

// Each label is matched independently against the normalized query, so
// one question can yield several parameters at once. The matched intent
// decides which of them it actually uses; the rest are ignored at
// template resolution. Only digit sequences are captured: no negative
// numbers, no decimals.
//
// The id labels are anchored with an explicit non-letter/non-digit
// delimiter instead of \b, which is ASCII-only in Go and never matches
// after "mã" or "số".
var (
	idRegex           = regexp.MustCompile(`(?:^|[^\p{L}\p{N}])(?:id|mã|số)\s*[:#]?\s*(\d+)`)
	groupRegex        = regexp.MustCompile(`nhóm\s*(?:số|id|mã)?\s*[:#]?\s*(\d+)`)
	studentRegex      = regexp.MustCompile(`học sinh\s*(?:số|id|mã)?\s*[:#]?\s*(\d+)`)
	feeRegex          = regexp.MustCompile(`phí\s*(?:số|id|mã)?\s*[:#]?\s*(\d+)`)
	examRegex         = regexp.MustCompile(`bài thi\s*(?:số|id|mã)?\s*[:#]?\s*(\d+)`)
	gradeRegex        = regexp.MustCompile(`khối\s*(?:số)?\s*[:#]?\s*(\d+)`)
	academicYearRegex = regexp.MustCompile(`năm học\s*(?:số|id)?\s*[:#]?\s*(\d+)`)
)

// ExtractParameters scans the query for labelled numerals and returns
// every parameter it can find, keyed by the template parameter name.
func ExtractParameters(query string) map[string]int {
	q := normalize(query)
	params := make(map[string]int)

	extract := func(key string, re *regexp.Regexp) {
		m := re.FindStringSubmatch(q)
		if len(m) < 2 {
			return
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		params[key] = n
	}

	extract("id", idRegex)
	extract("groupId", groupRegex)
	extract("studentId", studentRegex)
	extract("feeId", feeRegex)
	extract("examId", examRegex)
	extract("gradeId", gradeRegex)
	extract("academicYearId", academicYearRegex)

	return params
}
