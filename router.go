package main

import (
	handler "class-hive/biz/adaptor/controller"
	"class-hive/biz/adaptor/controller/classroom"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	student := r.Group("/student")
	{
		student.POST("/register", classroom.StudentRegister)
		student.POST("/login", classroom.StudentLogin)
		student.GET("/me", classroom.Me)
		student.GET("/search", classroom.SearchStudents)
		student.GET("/", classroom.ListStudents)
		student.GET("/:id", classroom.GetStudent)
		student.PATCH("/", classroom.UpdateUser)
		student.POST("/uploadPic", classroom.UploadPic)
		student.DELETE("/:id", classroom.DeleteStudent)
	}

	teacher := r.Group("/teacher")
	{
		teacher.POST("/register", classroom.TeacherRegister)
		teacher.POST("/login", classroom.TeacherLogin)
		teacher.GET("/me", classroom.Me)
		teacher.GET("/search", classroom.SearchTeachers)
		teacher.GET("/", classroom.ListTeachers)
		teacher.GET("/:id", classroom.GetTeacher)
		teacher.PATCH("/", classroom.UpdateUser)
		teacher.POST("/uploadPic", classroom.UploadPic)
		teacher.DELETE("/:id", classroom.DeleteTeacher)
	}

	team := r.Group("/team")
	{
		team.POST("/", classroom.CreateTeam)
		team.GET("/", classroom.ListTeams)
		team.GET("/teacher", classroom.MyTeams)
		team.GET("/student", classroom.MyTeams)
		team.POST("/join", classroom.JoinTeam)
		team.POST("/add-user", classroom.AddUser)
		team.GET("/:id", classroom.GetTeam)
		team.PATCH("/:id", classroom.UpdateTeam)
		team.DELETE("/:id", classroom.DeleteTeam)
	}

	assignment := r.Group("/assignment")
	{
		assignment.POST("/", classroom.CreateAssignment)
		assignment.GET("/", classroom.ListAssignments)
		assignment.GET("/teacher", classroom.MyAssignments)
		assignment.GET("/team/:teamId", classroom.GetAssignmentsByTeam)
		assignment.PATCH("/:id", classroom.UpdateAssignment)
		assignment.DELETE("/:id", classroom.DeleteAssignment)
	}

	submission := r.Group("/submission")
	{
		submission.POST("/", classroom.CreateSubmission)
		submission.GET("/my", classroom.MySubmissions)
		submission.GET("/assignment/:assignmentId", classroom.GetSubmissionsByAssignment)
		submission.GET("/student/:studentId/:assignmentId", classroom.GetStudentSubmission)
		submission.GET("/:submissionId", classroom.GetSubmission)
		submission.PATCH("/:submissionId", classroom.UpdateSubmission)
		submission.DELETE("/:submissionId", classroom.DeleteSubmission)
	}

	document := r.Group("/document")
	{
		document.POST("/upload", classroom.UploadDocuments)
		document.GET("/", classroom.ListDocuments)
		document.GET("/assignment/:assignmentId", classroom.GetDocumentsByAssignment)
		document.GET("/submission/:submissionId", classroom.GetDocumentsBySubmission)
		document.GET("/generation/:generationId", classroom.GetDocumentsByGeneration)
		document.DELETE("/:id", classroom.DeleteDocument)
	}

	questionGeneration := r.Group("/questionGeneration")
	{
		questionGeneration.POST("/", classroom.CreateGeneration)
		questionGeneration.GET("/", classroom.ListGenerations)
		questionGeneration.GET("/my", classroom.MyGenerations)
		questionGeneration.POST("/generate/:id", classroom.GeneratePaper)
		questionGeneration.GET("/paper/:id", classroom.GetPaper)
		questionGeneration.POST("/grade", classroom.GradeAnswer)
		questionGeneration.GET("/:id", classroom.GetGeneration)
		questionGeneration.PATCH("/:id", classroom.UpdateGeneration)
		questionGeneration.DELETE("/:id", classroom.DeleteGeneration)
	}
}
