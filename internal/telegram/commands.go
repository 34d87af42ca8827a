package telegram

type BotCommand struct {
	Command     *string `json:"command,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BotCommandScope selects the users a command list applies to. The wire
// "type" tells the variants apart.
type BotCommandScope interface{ botCommandScope() }

type BotCommandScopeDefault struct {
	Type *string `json:"type,omitempty" schema:"required,const=default"`
}

type BotCommandScopeAllPrivateChats struct {
	Type *string `json:"type,omitempty" schema:"required,const=all_private_chats"`
}

type BotCommandScopeAllGroupChats struct {
	Type *string `json:"type,omitempty" schema:"required,const=all_group_chats"`
}

type BotCommandScopeAllChatAdministrators struct {
	Type *string `json:"type,omitempty" schema:"required,const=all_chat_administrators"`
}

type BotCommandScopeChat struct {
	Type   *string `json:"type,omitempty" schema:"required,const=chat"`
	ChatID *ChatID `json:"chat_id,omitempty" schema:"required"`
}

type BotCommandScopeChatAdministrators struct {
	Type   *string `json:"type,omitempty" schema:"required,const=chat_administrators"`
	ChatID *ChatID `json:"chat_id,omitempty" schema:"required"`
}

type BotCommandScopeChatMember struct {
	Type   *string `json:"type,omitempty" schema:"required,const=chat_member"`
	ChatID *ChatID `json:"chat_id,omitempty" schema:"required"`
	UserID *int64  `json:"user_id,omitempty" schema:"required"`
}

func (*BotCommandScopeDefault) botCommandScope()               {}
func (*BotCommandScopeAllPrivateChats) botCommandScope()       {}
func (*BotCommandScopeAllGroupChats) botCommandScope()         {}
func (*BotCommandScopeAllChatAdministrators) botCommandScope() {}
func (*BotCommandScopeChat) botCommandScope()                  {}
func (*BotCommandScopeChatAdministrators) botCommandScope()    {}
func (*BotCommandScopeChatMember) botCommandScope()            {}

// ScopeChat returns the scope covering every member of one chat.
func ScopeChat(chat ChatID) *BotCommandScopeChat {
	return &BotCommandScopeChat{Type: Ptr("chat"), ChatID: &chat}
}

// ScopeDefault returns the fallback scope.
func ScopeDefault() *BotCommandScopeDefault {
	return &BotCommandScopeDefault{Type: Ptr("default")}
}

// MenuButton is the bot's menu button in a private chat.
type MenuButton interface{ menuButton() }

type MenuButtonCommands struct {
	Type *string `json:"type,omitempty" schema:"required,const=commands"`
}

type MenuButtonWebApp struct {
	Type   *string     `json:"type,omitempty" schema:"required,const=web_app"`
	Text   *string     `json:"text,omitempty" schema:"required"`
	WebApp *WebAppInfo `json:"web_app,omitempty" schema:"required"`
}

type MenuButtonDefault struct {
	Type *string `json:"type,omitempty" schema:"required,const=default"`
}

func (*MenuButtonCommands) menuButton() {}
func (*MenuButtonWebApp) menuButton()   {}
func (*MenuButtonDefault) menuButton()  {}
