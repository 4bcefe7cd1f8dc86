package usecase

import (
	"formation-management/pkg/gmailer"
	pkgLog "formation-management/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	mailer gmailer.IMailer
}

// New creates the notification UseCase.
func New(l pkgLog.Logger, mailer gmailer.IMailer) *implUseCase {
	return &implUseCase{
		l:      l,
		mailer: mailer,
	}
}
