package telegram

import "github.com/AlexYaroshenko/tgwire/internal/schema"

// Variant order is resolution order. Keep the more specific candidate ahead
// of any candidate whose fields are a subset of its own.
var registry = newRegistry()

func newRegistry() *schema.Registry {
	r := schema.NewRegistry()
	r.MustRegisterUnion("ChatMember", (*ChatMember)(nil),
		ChatMemberOwner{},
		ChatMemberAdministrator{},
		ChatMemberMember{},
		ChatMemberRestricted{},
		ChatMemberLeft{},
		ChatMemberBanned{},
	)
	r.MustRegisterUnion("BotCommandScope", (*BotCommandScope)(nil),
		BotCommandScopeDefault{},
		BotCommandScopeAllPrivateChats{},
		BotCommandScopeAllGroupChats{},
		BotCommandScopeAllChatAdministrators{},
		BotCommandScopeChat{},
		BotCommandScopeChatAdministrators{},
		BotCommandScopeChatMember{},
	)
	r.MustRegisterUnion("MenuButton", (*MenuButton)(nil),
		MenuButtonCommands{},
		MenuButtonWebApp{},
		MenuButtonDefault{},
	)
	r.MustRegisterUnion("InputMedia", (*InputMedia)(nil),
		InputMediaAnimation{},
		InputMediaDocument{},
		InputMediaAudio{},
		InputMediaPhoto{},
		InputMediaVideo{},
	)
	r.MustRegisterUnion("InputMessageContent", (*InputMessageContent)(nil),
		InputTextMessageContent{},
		InputVenueMessageContent{},
		InputLocationMessageContent{},
		InputContactMessageContent{},
		InputInvoiceMessageContent{},
	)
	r.MustRegisterUnion("InlineQueryResult", (*InlineQueryResult)(nil),
		InlineQueryResultCachedAudio{},
		InlineQueryResultCachedDocument{},
		InlineQueryResultCachedGif{},
		InlineQueryResultCachedMpeg4Gif{},
		InlineQueryResultCachedPhoto{},
		InlineQueryResultCachedSticker{},
		InlineQueryResultCachedVideo{},
		InlineQueryResultCachedVoice{},
		InlineQueryResultArticle{},
		InlineQueryResultAudio{},
		InlineQueryResultContact{},
		InlineQueryResultGame{},
		InlineQueryResultDocument{},
		InlineQueryResultGif{},
		InlineQueryResultLocation{},
		InlineQueryResultMpeg4Gif{},
		InlineQueryResultPhoto{},
		InlineQueryResultVenue{},
		InlineQueryResultVideo{},
		InlineQueryResultVoice{},
	)
	r.MustRegisterUnion("PassportElementError", (*PassportElementError)(nil),
		PassportElementErrorDataField{},
		PassportElementErrorFrontSide{},
		PassportElementErrorReverseSide{},
		PassportElementErrorSelfie{},
		PassportElementErrorFile{},
		PassportElementErrorFiles{},
		PassportElementErrorTranslationFile{},
		PassportElementErrorTranslationFiles{},
		PassportElementErrorUnspecified{},
	)
	return r
}

// Schema returns the registry holding every wire object and union of the
// Bot API.
func Schema() *schema.Registry { return registry }

// Decode decodes raw into dst using the Bot API schema. dst is a pointer to
// a wire object or to a union interface such as *ChatMember.
func Decode(raw []byte, dst any) error {
	return registry.Decode(raw, dst)
}
