package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus exposes the code so the adaptor can map it to an HTTP status.
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno creates a typed business error.
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// business errors
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("not authentication"))

	ErrEmailRegistered    = NewErrno(codes.AlreadyExists, errors.New("email already registered"))
	ErrSignUp             = NewErrno(codes.Code(1001), errors.New("registration failed, please retry"))
	ErrInvalidCredentials = NewErrno(codes.Unauthenticated, errors.New("invalid credentials"))

	ErrCreateTeam    = NewErrno(codes.Code(1010), errors.New("failed to create team"))
	ErrDuplicateCode = NewErrno(codes.AlreadyExists, errors.New("team code already in use"))
	ErrAlreadyInTeam = NewErrno(codes.AlreadyExists, errors.New("student is already in this team"))
	ErrJoinTeam      = NewErrno(codes.Code(1011), errors.New("failed to join team"))
	ErrJoinInFlight  = NewErrno(codes.Code(1012), errors.New("a join request for this team is already in progress"))

	ErrCreateAssignment = NewErrno(codes.Code(1020), errors.New("failed to create assignment"))
	ErrDeadlinePassed   = NewErrno(codes.Code(1021), errors.New("deadline has passed, submission not allowed"))
	ErrCreateSubmission = NewErrno(codes.Code(1022), errors.New("failed to create submission"))

	ErrNoFiles        = NewErrno(codes.InvalidArgument, errors.New("no files were uploaded"))
	ErrFileType       = NewErrno(codes.InvalidArgument, errors.New("unsupported file type"))
	ErrDocumentParent = NewErrno(codes.InvalidArgument, errors.New("provide exactly one of assignmentId, submissionId or generationId"))
	ErrUpload         = NewErrno(codes.Code(1030), errors.New("failed to upload document"))

	ErrCreateGeneration  = NewErrno(codes.Code(1040), errors.New("failed to create question generation"))
	ErrGeneratePaper     = NewErrno(codes.Code(1041), errors.New("failed to generate question paper"))
	ErrGradeAnswer       = NewErrno(codes.Code(1042), errors.New("failed to grade answer"))
	ErrGenerationPending = NewErrno(codes.Code(1043), errors.New("question paper has not been generated yet"))
)

// call-time errors
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid params"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("downstream call failed, please retry"))
)

// database errors
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("update failed"))
	ErrDelete          = NewErrno(codes.Code(2002), errors.New("delete failed"))
)
