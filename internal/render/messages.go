package render

import (
	"github.com/ericogr/duel-arena/internal/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const startText = "Welcome to the turn-based duel!\n" +
	"Two participants fight it out 1v1.\n" +
	"Each round runs: turn start -> first fighter acts -> second fighter acts -> DOT -> win check.\n" +
	"Statuses include poison, silence and shield; keep an eye on cooldowns.\n" +
	"Both participants submit an action to resolve a round, or ask for help to list commands."

const helpText = "Available commands:\n" +
	"start - create a battle for this room\n" +
	"new - restart the battle (keeps the seed)\n" +
	"status - show both sides\n" +
	"seed <int> - set or show the current random seed\n" +
	"help - show this help\n" +
	"action - submit your move for this round"

// zhHans holds the Simplified Chinese catalog keyed by the English format.
var zhHans = map[string]string{
	"This battle is over; start a new one.":                            "本局已结束，请开启新战斗。",
	"=== Round %d ===":                                                 "=== 第 %d 回合 ===",
	"-- End-of-round DOT --":                                           "-- 回合结束DOT结算 --",
	"Nobody is poisoned this round.":                                   "本回合无人中毒。",
	"%s took %d poison damage":                                         "%s受到中毒DOT %d",
	" (%d absorbed by shield)":                                         "（护盾吸收 %d）",
	", losing %d HP.":                                                  "，损失HP %d。",
	"Battle over: both fell, it's a draw!":                             "本局结束：同归于尽，平局！",
	"Battle over: you win, the AI is down!":                            "本局结束：你赢了，AI被你拿下！",
	"Battle over: you fell, the AI wins.":                              "本局结束：你倒下了，AI获胜。",
	"%s turn is silenced; only [Basic Attack] is available.":           "%s受到沉默影响，只能使用【普攻】。",
	"%s used [%s].":                                                    "%s使用【%s】。",
	"Dealt %d damage":                                                  "造成 %d 伤害",
	", %s lost %d HP.":                                                 "，%s损失HP %d。",
	"%s is poisoned for %d rounds (%d damage per round).":              "%s进入中毒 %d 回合（每回合%dDOT）。",
	"%s is silenced for %d rounds.":                                    "%s被沉默 %d 回合。",
	"The skill missed.":                                                "技能未命中。",
	"%s gained a %d shield for %d rounds.":                             "%s获得护盾 %d，持续 %d 回合。",
	"%s shield expired and the remainder was cleared.":                 "%s的护盾持续结束，剩余护盾清零。",
	"Current round: %d":                                                "当前回合：%d",
	"Player A: %s":                                                     "玩家A: %s",
	"Player B: %s":                                                     "玩家B: %s",
	"Submitted this round:":                                            "本回合已提交动作：",
	"Your skill cooldowns:":                                            "你的技能CD：",
	"Opponent skill cooldowns:":                                        "对方技能CD：",
	"Current seed: %s":                                                 "当前seed：%s",
	"Battle over, winner: %s":                                          "本局已结束，胜者：%s",
	"Round started, waiting for the other player~":                     "回合开始咯，请等待玩家响应~",
	"This round %s will use #%d %s":                                    "本轮%s要用%d号%s",
	"%s is silenced; [Basic Attack] will be used instead.":             "%s处于沉默中，本轮将改用【普攻】。",
	"No seed set (system random).":                                     "当前未设置seed（使用系统随机）。",
	"Seed set: %s (debug seed display enabled)":                        "已设置seed：%s（已开启调试seed显示）",
	"A new battle was created for you.":                                "已为你创建新战斗。",
	"New battle created; both sides reset. Submit an action to fight!": "新战斗已创建，双方状态已重置。提交动作开打！",
	"#%d %s (cooldown %d)":                                             "%d号 %s（CD %d）",
	"Your HP: %d/%d":                                                   "你的狗命剩余：%d/%d",
	"Opponent HP: %d/%d":                                               "对方狗命剩余：%d/%d",
	"shield %d":                                                        "护盾%d",
	"poisoned %d rounds":                                               "中毒%d回合",
	"silenced %d rounds":                                               "沉默%d回合",
	"shielded %d rounds":                                               "盾效%d回合",
	", ":                                                               "，",
	"AI":                                                               "AI",
	"You":                                                              "你",
	"The AI's":                                                         "AI",
	"Your":                                                             "你",
	"the opponent":                                                     "对方",
	"The opponent":                                                     "对方",
	"you":                                                              "你",
	"not joined":                                                       "未加入",
	"draw":                                                             "平局",
	"player":                                                           "玩家",
	constants.MsgRoomFull:                                              "当前房间为双人对局，无法加入",
	constants.MsgAlreadyActed:                                          "你本回合已出招，等对方",
	constants.ErrBattleNotFound:                                        "你还没有战斗记录，请先开始一局。",
	startText: "欢迎来到回合制战斗！\n" +
		"两位参与者进行 1v1 对战。\n" +
		"每回合执行：回合开始 -> 先手行动 -> 后手行动 -> DOT结算 -> 胜负判断。\n" +
		"状态包含中毒/沉默/护盾，记得观察 CD 和异常状态。\n" +
		"双方各提交一次动作后统一结算，或查看帮助了解指令。",
	helpText: "可用命令：\n" +
		"start - 为本房间创建战斗\n" +
		"new - 重开一局（保留seed）\n" +
		"status - 查看双方状态\n" +
		"seed <int> - 设置或查看当前随机种子\n" +
		"help - 查看帮助\n" +
		"action - 提交本回合动作",
}

func init() {
	for key, msg := range zhHans {
		for _, tag := range []language.Tag{language.SimplifiedChinese, language.Chinese} {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}
