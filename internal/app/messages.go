// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-task-keeper server handlers, middleware and validators.
//
// All Msg* constants are the user-facing (Polish) strings written into HTTP
// response bodies. Clients branch on them, so each failure category keeps its
// own wording.
package app

// Access gate.
const (
	// MsgMissingToken is returned when the Authorization header is absent.
	MsgMissingToken = "Brak tokenu autoryzacji, dostęp zabroniony"

	// MsgMalformedTokenFormat is returned when the header holds no token
	// after the "Bearer " prefix is stripped.
	MsgMalformedTokenFormat = "Nieprawidłowy format tokenu"

	// MsgInvalidToken is returned for tampered, foreign or corrupt tokens.
	MsgInvalidToken = "Token jest nieprawidłowy"

	// MsgTokenExpired is returned only for well-formed tokens past expiry, so
	// clients can prompt for a new login.
	MsgTokenExpired = "Token wygasł, zaloguj się ponownie"

	// MsgInvalidSubject is returned when the token subject no longer exists.
	MsgInvalidSubject = "Token jest nieprawidłowy - użytkownik nie istnieje"

	// MsgAccountDeactivated is returned for inactive accounts, both by the
	// gate and on login.
	MsgAccountDeactivated = "Konto zostało dezaktywowane"

	// MsgAuthorizationFailed is the generic 500 message of the gate.
	MsgAuthorizationFailed = "Błąd serwera podczas autoryzacji"

	// MsgUnauthenticated is returned by role checks without an identity.
	MsgUnauthenticated = "Nie jesteś zalogowany"

	// MsgForbidden is returned when the identity lacks the required role.
	MsgForbidden = "Nie masz uprawnień do wykonania tej operacji"
)

// Registration, login and profile.
const (
	MsgValidationFailed     = "Błędy walidacji"
	MsgAccountAlreadyExists = "Użytkownik z tym adresem email już istnieje"
	MsgRegistered           = "Użytkownik został pomyślnie zarejestrowany"
	MsgRegistrationFailed   = "Błąd serwera podczas rejestracji"

	// MsgInvalidCredentials is shared by "no such email" and "wrong password".
	MsgInvalidCredentials = "Nieprawidłowy email lub hasło"
	MsgLoggedIn           = "Pomyślnie zalogowano"
	MsgLoginFailed        = "Błąd serwera podczas logowania"

	MsgAccountNotFound = "Użytkownik nie został znaleziony"
	MsgProfileFailed   = "Błąd serwera podczas pobierania profilu"

	MsgAccountDeleted       = "Konto zostało usunięte"
	MsgAccountDeleteFailed  = "Błąd serwera podczas usuwania konta"
	MsgAccountStatusChanged = "Status konta został zmieniony"
	MsgAccountStatusFailed  = "Błąd serwera podczas zmiany statusu konta"
)

// Email verification and password reset.
const (
	MsgEmailVerified           = "Adres email został zweryfikowany"
	MsgInvalidVerificationLink = "Nieprawidłowy token weryfikacyjny"
	MsgVerificationFailed      = "Błąd serwera podczas weryfikacji adresu email"

	// MsgPasswordResetRequested is returned whether or not the address exists.
	MsgPasswordResetRequested = "Jeśli konto istnieje, wysłaliśmy instrukcje resetowania hasła"
	MsgInvalidResetLink       = "Token resetowania hasła jest nieprawidłowy lub wygasł"
	MsgPasswordChanged        = "Hasło zostało zmienione"
	MsgPasswordResetFailed    = "Błąd serwera podczas resetowania hasła"
)

// Field validation.
const (
	MsgFirstNameRequired = "Imię jest wymagane"
	MsgFirstNameLength   = "Imię musi mieć od 2 do 50 znaków"
	MsgFirstNameLetters  = "Imię może zawierać tylko litery"

	MsgLastNameRequired = "Nazwisko jest wymagane"
	MsgLastNameLength   = "Nazwisko musi mieć od 2 do 50 znaków"
	MsgLastNameLetters  = "Nazwisko może zawierać tylko litery"

	MsgEmailRequired = "Email jest wymagany"
	MsgInvalidEmail  = "Podaj prawidłowy adres email"

	MsgPasswordRequired   = "Hasło jest wymagane"
	MsgPasswordLength     = "Hasło musi mieć co najmniej 6 znaków"
	MsgPasswordTooLong    = "Hasło nie może być dłuższe niż 72 bajty"
	MsgPasswordComplexity = "Hasło musi zawierać co najmniej jedną małą literę, jedną wielką literę i jedną cyfrę"
	MsgPasswordsMismatch  = "Hasła nie są identyczne"

	MsgTokenRequired    = "Token jest wymagany"
	MsgStatusRequired   = "Status konta jest wymagany"
	MsgMalformedPayload = "Nieprawidłowe dane żądania"
)

// Routing and unexpected failures.
const (
	MsgRouteNotFound    = "Nie znaleziono zasobu"
	MsgMethodNotAllowed = "Metoda nie jest obsługiwana"
	MsgInternalError    = "Wewnętrzny błąd serwera"
)
