// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// lyra client screens.
//
// All Msg* constants are the Portuguese strings shown to the user. Keeping
// them in one place keeps the wording consistent between screens and makes
// it impossible for one screen to tell "unknown email" apart from "wrong
// password".
package app

const (
	// MsgFillAllFields is shown when the login form is submitted with a
	// blank email or password. No remote call is made.
	MsgFillAllFields = "Preencha todos os campos!"

	// MsgInvalidCredentials is the single answer to a failed login, whether
	// the email is unknown or the password is wrong.
	MsgInvalidCredentials = "Email ou senha inválidos"

	// MsgRemoteUnavailable is shown when the credential store cannot be
	// reached or returned data the client cannot use.
	MsgRemoteUnavailable = "Não foi possível conectar ao servidor. Tente novamente."

	// MsgTimeout is shown when a remote call exceeded the request timeout.
	MsgTimeout = "O servidor demorou demais para responder. Tente novamente."

	// MsgSubmissionInProgress is shown when the user re-submits a form whose
	// previous submission has not finished.
	MsgSubmissionInProgress = "Aguarde, a operação anterior ainda está em andamento."

	// MsgSessionExpired is shown when a screen needs a session and there is
	// none (never set, logged out, or unreadable).
	MsgSessionExpired = "Sessão encerrada. Faça login novamente."

	// MsgPermissionDenied is shown when the Role Gate refuses an action at
	// execution time.
	MsgPermissionDenied = "Você não tem permissão para esta ação."

	// MsgRecordNotFound is shown when the edited or deleted record no longer
	// exists.
	MsgRecordNotFound = "Registro não encontrado."

	// MsgStoredPasswordMissing aborts a user edit that keeps the password
	// when the stored hash cannot be read back.
	MsgStoredPasswordMissing = "Não foi possível manter a senha atual do usuário."

	// MsgClassHasActivities is shown when deleting a class that still has
	// activities.
	MsgClassHasActivities = "Remova as atividades da turma antes de excluí-la."

	// MsgDeleteOwnAccount refuses deleting the logged-in user's own record.
	MsgDeleteOwnAccount = "Você não pode excluir a própria conta."

	// MsgUnexpected is the fallback for errors without a dedicated message.
	MsgUnexpected = "Ocorreu um erro inesperado."
)

// Field validation messages of the management forms.
const (
	MsgFillRequiredFields      = "Preencha todos os campos obrigatórios."
	MsgInvalidEmail            = "Email inválido."
	MsgPasswordRequired        = "Senha obrigatória para novo usuário."
	MsgProfessorAssignment     = "Para o tipo Professor, a Turma e o Curso são obrigatórios."
	MsgClassNameAndProfessor   = "Preencha o nome da turma e o professor."
	MsgActivityDescription     = "Preencha a descrição e verifique sua permissão."
	MsgKeepPasswordPlaceholder = "deixe vazio para manter"
)

// Confirmation and status texts.
const (
	MsgLoggingIn     = "Entrando..."
	MsgLoading       = "Carregando..."
	MsgSaving        = "Salvando..."
	MsgSaved         = "Salvo com sucesso."
	MsgDeleted       = "Excluído com sucesso."
	MsgCopied        = "Lista de alunos copiada."
	MsgConfirmLogout = "Deseja realmente sair?"
	MsgConfirmDelete = "Excluir \"%s\"?"
	MsgNoStudents    = "Nenhum aluno registrado"
	MsgNoActivities  = "Nenhuma atividade cadastrada"
)
