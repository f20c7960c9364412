package main

import (
	"log"

	"github.com/nlopes/slack"
)

// SlackNotifier posts departure alerts to a Slack channel, for people who
// want them somewhere other than their desktop
type SlackNotifier struct {
	client  *slack.Client
	channel string
	log     *log.Logger
}

// NewSlackNotifier returns a notification sink posting to the given channel
func NewSlackNotifier(apiToken, channel string, log *log.Logger) *SlackNotifier {
	return &SlackNotifier{
		client:  slack.New(apiToken),
		channel: channel,
		log:     log,
	}
}

// Deliver implements DeliverFunc
func (sn *SlackNotifier) Deliver(title, body string) error {
	_, _, err := sn.client.PostMessage(sn.channel,
		slack.MsgOptionText(title+": "+body, false))
	return err
}
