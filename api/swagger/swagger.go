package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Exam Admin API",
        "description": "Exam-administration backend: duty allocation, seating, booklets, absentees, timetables.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Allocations", "description": "Teacher invigilation duty allocation"},
        {"name": "Seating", "description": "Student seating arrangement"},
        {"name": "Classrooms", "description": "Duty-side and seating-side room lists"},
        {"name": "Teachers", "description": "Teacher listings"},
        {"name": "Booklets", "description": "Answer booklet assignment"},
        {"name": "Absentees", "description": "Exam absentee tracking"},
        {"name": "Timetable", "description": "Exam timetables"},
        {"name": "DutyRoster", "description": "Faculty duty roster"},
        {"name": "Faculty", "description": "Department faculty"},
        {"name": "Auth", "description": "Authentication"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate an administrative account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/allocate-division": {
            "post": {
                "tags": ["Allocations"],
                "summary": "Batch-allocate teachers of one division to available rooms",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AllocateDivisionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "No valid allocations", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/manual-allocate": {
            "post": {
                "tags": ["Allocations"],
                "summary": "Place one teacher into one classroom",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ManualAllocateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Constraint violated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Teacher or classroom not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/allocations": {
            "get": {
                "tags": ["Allocations"],
                "summary": "List rooms split into allocated and unallocated",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/allocations/classroom/{classroomId}": {
            "delete": {
                "tags": ["Allocations"],
                "summary": "Delete every allocation for one classroom",
                "parameters": [
                    {"name": "classroomId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/question-papers/{classroomId}": {
            "get": {
                "tags": ["Allocations"],
                "summary": "Per-track question paper counts for one classroom",
                "parameters": [
                    {"name": "classroomId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Classroom not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/classrooms": {
            "get": {
                "tags": ["Classrooms"],
                "summary": "List duty-allocation classrooms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/teachers/{semester}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers flagged for one semester track",
                "parameters": [
                    {"name": "semester", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/teachers-info": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List every teacher with both semester flags",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/teachers-details": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List the raw seed-file teacher rows with course names",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/unallocated-teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers without a duty allocation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/available-classrooms": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List under-capacity rooms with occupancy counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/seating-arrangement": {
            "get": {
                "tags": ["Seating"],
                "summary": "Recompute and return the seating arrangement",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/seating-arrangement/export": {
            "get": {
                "tags": ["Seating"],
                "summary": "Download the stored seating arrangement as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/api/classroom-list": {
            "get": {
                "tags": ["Classrooms"],
                "summary": "List seating rooms in sequence order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Classrooms"],
                "summary": "Append a seating room to the sequence",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddSeatingRoomRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Duplicate name", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/classroom-list/{name}": {
            "delete": {
                "tags": ["Classrooms"],
                "summary": "Remove a seating room by name",
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/classroom-list/benches": {
            "put": {
                "tags": ["Classrooms"],
                "summary": "Change a seating room's bench count",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateBenchesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/booklets/assign": {
            "post": {
                "tags": ["Booklets"],
                "summary": "Generate booklet IDs for a roll range",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignBookletsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/booklets": {
            "get": {
                "tags": ["Booklets"],
                "summary": "List assigned booklets",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string"},
                    {"name": "division", "in": "query", "type": "string"},
                    {"name": "course", "in": "query", "type": "string"},
                    {"name": "isa_exam_number", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/absentees/mark": {
            "post": {
                "tags": ["Absentees"],
                "summary": "Record absentees from an attendance batch",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkAttendanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/absentees": {
            "get": {
                "tags": ["Absentees"],
                "summary": "List absent records",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string"},
                    {"name": "division", "in": "query", "type": "string"},
                    {"name": "course", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/timetable/save": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Save a batch of exam timetable entries",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveTimetableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/timetable/courses/{semester}": {
            "get": {
                "tags": ["Absentees"],
                "summary": "List courses with at least one absent record",
                "parameters": [
                    {"name": "semester", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/timetable/{semester}": {
            "get": {
                "tags": ["Timetable"],
                "summary": "List timetable entries for one semester",
                "parameters": [
                    {"name": "semester", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/duty-allocation": {
            "get": {
                "tags": ["DutyRoster"],
                "summary": "List the stored duty roster",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/duty-allocation/save": {
            "post": {
                "tags": ["DutyRoster"],
                "summary": "Save the faculty duty roster for the dates in the payload",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveDutyRosterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid exam type", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/duty-allocation/clear": {
            "delete": {
                "tags": ["DutyRoster"],
                "summary": "Delete the whole duty roster",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/duty-allocation/export": {
            "get": {
                "tags": ["DutyRoster"],
                "summary": "Download the duty roster as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/api/faculty": {
            "get": {
                "tags": ["Faculty"],
                "summary": "List faculty in invigilating ranks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            },
            "required": ["username", "password", "role"]
        },
        "AllocateDivisionRequest": {
            "type": "object",
            "properties": {
                "semester": {"type": "string", "enum": ["3", "5"]},
                "division": {"type": "string"}
            },
            "required": ["semester", "division"]
        },
        "ManualAllocateRequest": {
            "type": "object",
            "properties": {
                "teacherId": {"type": "integer"},
                "classroomId": {"type": "integer"}
            },
            "required": ["teacherId", "classroomId"]
        },
        "AddSeatingRoomRequest": {
            "type": "object",
            "properties": {
                "classroom_name": {"type": "string"},
                "no_of_benches": {"type": "integer"}
            },
            "required": ["classroom_name", "no_of_benches"]
        },
        "UpdateBenchesRequest": {
            "type": "object",
            "properties": {
                "classroom_name": {"type": "string"},
                "new_no_of_benches": {"type": "integer"}
            },
            "required": ["classroom_name", "new_no_of_benches"]
        },
        "AssignBookletsRequest": {
            "type": "object",
            "properties": {
                "semester": {"type": "string"},
                "division": {"type": "string"},
                "course": {"type": "string"},
                "isaExamNumber": {"type": "string"},
                "startRoll": {"type": "integer"},
                "endRoll": {"type": "integer"}
            },
            "required": ["semester", "division", "course", "isaExamNumber", "startRoll", "endRoll"]
        },
        "MarkAttendanceRequest": {
            "type": "object",
            "properties": {
                "attendanceData": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/AttendanceRecord"}
                }
            },
            "required": ["attendanceData"]
        },
        "AttendanceRecord": {
            "type": "object",
            "properties": {
                "RollNumber": {"type": "integer"},
                "Division": {"type": "string"},
                "Course": {"type": "string"},
                "Semester": {"type": "string"},
                "ISAExamNumber": {"type": "string"},
                "Status": {"type": "string"}
            }
        },
        "SaveTimetableRequest": {
            "type": "object",
            "properties": {
                "examType": {"type": "string"},
                "semester": {"type": "string"},
                "entries": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/TimetableEntryInput"}
                }
            },
            "required": ["examType", "semester", "entries"]
        },
        "TimetableEntryInput": {
            "type": "object",
            "properties": {
                "department": {"type": "string"},
                "date": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "courseName": {"type": "string"},
                "courseCode": {"type": "string"}
            }
        },
        "SaveDutyRosterRequest": {
            "type": "object",
            "properties": {
                "examType": {"type": "string", "enum": ["ISA1", "ISA2", "ESA"]},
                "allocations": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DutyRosterInput"}
                }
            },
            "required": ["examType", "allocations"]
        },
        "DutyRosterInput": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "session": {"type": "string"},
                "name": {"type": "string"},
                "classroom": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
