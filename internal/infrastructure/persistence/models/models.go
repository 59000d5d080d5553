package models

// All returns every persistence model, in creation order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&TicketModel{},
		&DraftModel{},
		&VoiceNoteModel{},
	}
}
