// Package intent: the static catalog for the tutoring-center backend.
package intent

import "github.com/tutorhub-ai/tutorhub/internal/apireq"

// defaultMappings returns the catalog entries in priority order.
// Specific phrases must stay above the generic list/count phrases for
// the same resource; the matcher takes the first hit, not the best.
func defaultMappings() []*Mapping {
	return []*Mapping{
		// ============================================================
		// STUDENTS
		// ============================================================
		{
			Patterns:    []string{"học sinh có id", "học sinh có mã", "thông tin học sinh số"},
			Description: "Look up one student by id",
			Request: apireq.Template{
				Endpoint:   "/api/v1/student/{id}",
				Method:     apireq.MethodGet,
				PathParams: map[string]string{"id": apireq.ExtractFromQuery},
			},
		},
		{
			Patterns:    []string{"học sinh trong nhóm", "học sinh của nhóm", "thành viên nhóm"},
			Description: "List the students of one group",
			Request: apireq.Template{
				Endpoint:   "/api/v1/group/{groupId}/students",
				Method:     apireq.MethodGet,
				PathParams: map[string]string{"groupId": apireq.ExtractFromQuery},
			},
			ResultMode: ResultModeList,
		},
		{
			Patterns:    []string{"bao nhiêu học sinh", "có mấy học sinh", "tổng số học sinh"},
			Description: "Count all students",
			Request: apireq.Template{
				Endpoint: "/api/v1/student",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeCount,
		},
		{
			Patterns:    []string{"danh sách học sinh", "liệt kê học sinh"},
			Description: "List all students",
			Request: apireq.Template{
				Endpoint: "/api/v1/student",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeList,
		},

		// ============================================================
		// GROUPS
		// ============================================================
		{
			Patterns:    []string{"nhóm có id", "nhóm có mã", "thông tin nhóm số"},
			Description: "Look up one group by id",
			Request: apireq.Template{
				Endpoint:   "/api/v1/group/{id}",
				Method:     apireq.MethodGet,
				PathParams: map[string]string{"id": apireq.ExtractFromQuery},
			},
		},
		{
			Patterns:    []string{"bao nhiêu nhóm", "có mấy nhóm"},
			Description: "Count all groups",
			Request: apireq.Template{
				Endpoint: "/api/v1/group",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeCount,
		},
		{
			Patterns:    []string{"danh sách nhóm", "liệt kê nhóm", "nhóm học nào"},
			Description: "List all groups",
			Request: apireq.Template{
				Endpoint: "/api/v1/group",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeList,
		},

		// ============================================================
		// TEACHERS
		// ============================================================
		{
			Patterns:    []string{"giáo viên có id", "giáo viên có mã"},
			Description: "Look up one teacher by id",
			Request: apireq.Template{
				Endpoint:   "/api/v1/teacher/{id}",
				Method:     apireq.MethodGet,
				PathParams: map[string]string{"id": apireq.ExtractFromQuery},
			},
		},
		{
			Patterns:    []string{"bao nhiêu giáo viên", "có mấy giáo viên"},
			Description: "Count all teachers",
			Request: apireq.Template{
				Endpoint: "/api/v1/teacher",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeCount,
		},
		{
			Patterns:    []string{"danh sách giáo viên", "liệt kê giáo viên"},
			Description: "List all teachers",
			Request: apireq.Template{
				Endpoint: "/api/v1/teacher",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeList,
		},

		// ============================================================
		// FEES & PAYMENTS
		// ============================================================
		{
			Patterns:    []string{"phí có id", "phí có mã"},
			Description: "Look up one fee by id",
			Request: apireq.Template{
				Endpoint:   "/api/v1/fee/{id}",
				Method:     apireq.MethodGet,
				PathParams: map[string]string{"id": apireq.ExtractFromQuery},
			},
		},
		{
			Patterns:    []string{"liệt kê phí", "danh sách phí", "các loại phí"},
			Description: "List all fees",
			Request: apireq.Template{
				Endpoint: "/api/v1/fee",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeList,
		},
		{
			Patterns:    []string{"thanh toán của học sinh", "học sinh đã đóng"},
			Description: "List payments filtered by student",
			Request: apireq.Template{
				Endpoint:    "/api/v1/payment",
				Method:      apireq.MethodGet,
				QueryParams: map[string]string{"studentId": apireq.ExtractFromQuery},
			},
			ResultMode: ResultModeList,
		},
		{
			Patterns:    []string{"danh sách thanh toán", "liệt kê thanh toán"},
			Description: "List all payments",
			Request: apireq.Template{
				Endpoint: "/api/v1/payment",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeList,
		},

		// ============================================================
		// SCHEDULES
		// ============================================================
		{
			Patterns:    []string{"lịch học của nhóm", "lịch của nhóm"},
			Description: "List schedules filtered by group",
			Request: apireq.Template{
				Endpoint:    "/api/v1/schedule",
				Method:      apireq.MethodGet,
				QueryParams: map[string]string{"groupId": apireq.ExtractFromQuery},
			},
			ResultMode: ResultModeList,
		},
		{
			Patterns:    []string{"lịch học", "thời khóa biểu"},
			Description: "List all schedules",
			Request: apireq.Template{
				Endpoint: "/api/v1/schedule",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeList,
		},

		// ============================================================
		// EXAMS & GRADES
		// ============================================================
		{
			Patterns:    []string{"điểm của bài thi", "kết quả bài thi"},
			Description: "List the grades of one exam",
			Request: apireq.Template{
				Endpoint:   "/api/v1/exam/{examId}/grades",
				Method:     apireq.MethodGet,
				PathParams: map[string]string{"examId": apireq.ExtractFromQuery},
			},
			ResultMode: ResultModeList,
		},
		{
			Patterns:    []string{"danh sách bài thi", "liệt kê bài thi", "bài thi nào"},
			Description: "List all exams",
			Request: apireq.Template{
				Endpoint: "/api/v1/exam",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeList,
		},

		// ============================================================
		// ACADEMIC YEARS
		// ============================================================
		{
			Patterns:    []string{"năm học nào", "danh sách năm học"},
			Description: "List all academic years",
			Request: apireq.Template{
				Endpoint: "/api/v1/academic-year",
				Method:   apireq.MethodGet,
			},
			ResultMode: ResultModeList,
		},
	}
}
