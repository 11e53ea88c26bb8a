package telegram_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	tb "gopkg.in/telebot.v3"

	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/telegram"
	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/telegram/mocks"
)

const chatID = int64(123)

var defaultUser = &tb.User{
	ID: chatID,
}

var texts = telegram.Texts{
	DigestTime:  "21:00",
	WebAppURL:   "https://ispanskie-msk-bot-ver.vercel.app",
	BotUsername: "ispanskie_msk_bot",
}

const (
	welcomeMsg = "🏘 Добро пожаловать в бот Испанских Кварталов!\n\n" +
		"Здесь вы можете:\n" +
		"• Получать новости района\n" +
		"• Подписаться на ежедневный дайджест (21:00)\n" +
		"• Просматривать карту бизнеса\n\n" +
		"Выберите действие:"
	subscribedMsg = "✅ Вы подписались на ежедневный дайджест!\n\n" +
		"📬 Каждый день в 21:00 вы будете получать краткую сводку новостей района.\n\n" +
		"Чтобы отписаться, используйте команду /digest_off"
	unsubscribedMsg = "❌ Вы отписались от ежедневного дайджеста.\n\n" +
		"Чтобы снова подписаться, используйте команду /digest_on"
	statusOnMsg = "✅ Вы подписаны на ежедневный дайджест\n\n" +
		"Команды:\n/digest_on - Подписаться\n/digest_off - Отписаться"
	statusOffMsg = "❌ Вы не подписаны на дайджест\n\n" +
		"Команды:\n/digest_on - Подписаться\n/digest_off - Отписаться"
	helpMsg = "📚 Доступные команды:\n\n" +
		"/start - Главное меню\n" +
		"/digest_on - Подписаться на дайджест\n" +
		"/digest_off - Отписаться от дайджеста\n" +
		"/digest_status - Статус подписки\n" +
		"/help - Эта справка\n\n" +
		"🌐 Веб-приложение:\n" +
		"https://ispanskie-msk-bot-ver.vercel.app"
	aboutMsg = "ℹ️ О боте\n\n" +
		"Этот бот создан для жителей ЖК Испанские Кварталы.\n\n" +
		"🔗 Веб-приложение: https://ispanskie-msk-bot-ver.vercel.app\n" +
		"📱 Telegram: @ispanskie_msk_bot"
	errorMsg = "⚠️ Что-то пошло не так. Пожалуйста, попробуйте позже."
)

func TestHandler_Route(t *testing.T) {
	type fields struct {
		subscriptions func(*gomock.Controller) telegram.Subscriptions
	}
	tests := []struct {
		name       string
		fields     fields
		kind       telegram.Kind
		want       string
		wantMarkup bool
		wantOK     bool
	}{
		{
			name: "start",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			kind:       telegram.KindStart,
			want:       welcomeMsg,
			wantMarkup: true,
			wantOK:     true,
		},
		{
			name: "subscribe",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Subscribe(chatID).Return(true, nil)
					return res
				},
			},
			kind:   telegram.KindSubscribe,
			want:   subscribedMsg,
			wantOK: true,
		},
		{
			name: "subscribe_error",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Subscribe(chatID).Return(false, assert.AnError)
					return res
				},
			},
			kind:   telegram.KindSubscribe,
			want:   errorMsg,
			wantOK: true,
		},
		{
			name: "unsubscribe",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Unsubscribe(chatID).Return(false, nil)
					return res
				},
			},
			kind:   telegram.KindUnsubscribe,
			want:   unsubscribedMsg,
			wantOK: true,
		},
		{
			name: "unsubscribe_error",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Unsubscribe(chatID).Return(false, assert.AnError)
					return res
				},
			},
			kind:   telegram.KindUnsubscribe,
			want:   errorMsg,
			wantOK: true,
		},
		{
			name: "status_subscribed",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().IsSubscribed(chatID).Return(true, nil)
					return res
				},
			},
			kind:   telegram.KindStatus,
			want:   statusOnMsg,
			wantOK: true,
		},
		{
			name: "status_not_subscribed",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().IsSubscribed(chatID).Return(false, nil)
					return res
				},
			},
			kind:   telegram.KindStatus,
			want:   statusOffMsg,
			wantOK: true,
		},
		{
			name: "status_error",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().IsSubscribed(chatID).Return(false, assert.AnError)
					return res
				},
			},
			kind:   telegram.KindStatus,
			want:   errorMsg,
			wantOK: true,
		},
		{
			name: "help",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			kind:   telegram.KindHelp,
			want:   helpMsg,
			wantOK: true,
		},
		{
			name: "about",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			kind:   telegram.KindAbout,
			want:   aboutMsg,
			wantOK: true,
		},
		{
			name: "unknown",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			kind:   telegram.KindUnknown,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := telegram.NewHandler(tt.fields.subscriptions(ctrl), texts, slog.New(slog.DiscardHandler))
			got, ok := h.Route(tt.kind, chatID)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.Text)
			assert.Equal(t, tt.wantMarkup, got.Markup != nil)
		})
	}
}

func TestHandler_Route_StartMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := telegram.NewHandler(mocks.NewMockSubscriptions(ctrl), texts, slog.New(slog.DiscardHandler))
	got, ok := h.Route(telegram.KindStart, chatID)
	require.True(t, ok)
	require.NotNil(t, got.Markup)
	require.Len(t, got.Markup.InlineKeyboard, 2)

	assert.Equal(t, "📰 Включить дайджест", got.Markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "digest_on", got.Markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "ℹ️ О боте", got.Markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, "about", got.Markup.InlineKeyboard[1][0].Unique)
}

func TestHandler_Command(t *testing.T) {
	type fields struct {
		subscriptions func(*gomock.Controller) telegram.Subscriptions
	}
	type args struct {
		kind telegram.Kind
		ctx  func(*gomock.Controller) tb.Context
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "start_with_menu",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			args: args{
				kind: telegram.KindStart,
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Send(welcomeMsg, gomock.AssignableToTypeOf(&tb.ReplyMarkup{})).Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "subscribe",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Subscribe(chatID).Return(true, nil)
					return res
				},
			},
			args: args{
				kind: telegram.KindSubscribe,
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Send(subscribedMsg).Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "status",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().IsSubscribed(chatID).Return(false, nil)
					return res
				},
			},
			args: args{
				kind: telegram.KindStatus,
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Send(statusOffMsg).Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "store_failure_still_replies",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Unsubscribe(chatID).Return(false, assert.AnError)
					return res
				},
			},
			args: args{
				kind: telegram.KindUnsubscribe,
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Send(errorMsg).Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "send_error",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			args: args{
				kind: telegram.KindHelp,
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Send(helpMsg).Return(assert.AnError)
					return ctx
				},
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError, i...)
			},
		},
		{
			name: "unknown_kind",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			args: args{
				kind: telegram.KindUnknown,
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Sender().Return(defaultUser)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := telegram.NewHandler(tt.fields.subscriptions(ctrl), texts, slog.New(slog.DiscardHandler))
			tt.wantErr(t, h.Command(tt.args.kind)(tt.args.ctx(ctrl)), tt.args.kind.String())
		})
	}
}

func TestHandler_Callback(t *testing.T) {
	type fields struct {
		subscriptions func(*gomock.Controller) telegram.Subscriptions
	}
	type args struct {
		ctx func(*gomock.Controller) tb.Context
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "subscribe",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Subscribe(chatID).Return(true, nil)
					return res
				},
			},
			args: args{
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Callback().Return(&tb.Callback{Data: "\fdigest_on"})
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Respond().Return(nil)
					ctx.EXPECT().Edit(subscribedMsg).Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "subscribe_without_prefix",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Subscribe(chatID).Return(true, nil)
					return res
				},
			},
			args: args{
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Callback().Return(&tb.Callback{Data: "digest_on"})
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Respond().Return(nil)
					ctx.EXPECT().Edit(subscribedMsg).Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "subscribe_error",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Subscribe(chatID).Return(false, assert.AnError)
					return res
				},
			},
			args: args{
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Callback().Return(&tb.Callback{Data: "\fdigest_on"})
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Respond().Return(nil)
					ctx.EXPECT().Edit(errorMsg).Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "about",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			args: args{
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Callback().Return(&tb.Callback{Data: "\fabout"})
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Respond().Return(nil)
					ctx.EXPECT().Edit(aboutMsg).Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "respond_error_is_not_fatal",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			args: args{
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Callback().Return(&tb.Callback{Data: "\fabout"})
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Respond().Return(assert.AnError)
					ctx.EXPECT().Edit(aboutMsg).Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "edit_error",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			args: args{
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Callback().Return(&tb.Callback{Data: "\fabout"})
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Respond().Return(nil)
					ctx.EXPECT().Edit(aboutMsg).Return(assert.AnError)
					return ctx
				},
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError, i...)
			},
		},
		{
			name: "unknown_data",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			args: args{
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Callback().Return(&tb.Callback{Data: "\fdigest_off"})
					ctx.EXPECT().Sender().Return(defaultUser)
					ctx.EXPECT().Respond().Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "nil_callback",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					return mocks.NewMockSubscriptions(ctrl)
				},
			},
			args: args{
				ctx: func(ctrl *gomock.Controller) tb.Context {
					ctx := mocks.NewMockTelebotContext(ctrl)
					ctx.EXPECT().Callback().Return(nil)
					return ctx
				},
			},
			wantErr: assert.NoError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := telegram.NewHandler(tt.fields.subscriptions(ctrl), texts, slog.New(slog.DiscardHandler))
			tt.wantErr(t, h.Callback(tt.args.ctx(ctrl)))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "start", telegram.KindStart.String())
	assert.Equal(t, "subscribe", telegram.KindSubscribe.String())
	assert.Equal(t, "unsubscribe", telegram.KindUnsubscribe.String())
	assert.Equal(t, "status", telegram.KindStatus.String())
	assert.Equal(t, "help", telegram.KindHelp.String())
	assert.Equal(t, "about", telegram.KindAbout.String())
	assert.Equal(t, "unknown", telegram.KindUnknown.String())
}
