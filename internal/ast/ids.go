package ast

type (
	// primary node categories
	FileID uint32
	StmtID uint32
	ExprID uint32
	// sub-entities
	FnID      uint32
	ClassID   uint32
	ParamID   uint32
	MemberID  uint32
	PayloadID uint32
)

const (
	NoFileID    FileID    = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoFnID      FnID      = 0
	NoClassID   ClassID   = 0
	NoParamID   ParamID   = 0
	NoMemberID  MemberID  = 0
	NoPayloadID PayloadID = 0
)

func (id FileID) IsValid() bool   { return id != NoFileID }
func (id StmtID) IsValid() bool   { return id != NoStmtID }
func (id ExprID) IsValid() bool   { return id != NoExprID }
func (id FnID) IsValid() bool     { return id != NoFnID }
func (id ClassID) IsValid() bool  { return id != NoClassID }
func (id ParamID) IsValid() bool  { return id != NoParamID }
func (id MemberID) IsValid() bool { return id != NoMemberID }
