package test

import (
	"context"
	"encoding/json"
	"os/exec"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hochfrequenz/fristenkalender/app"
	"github.com/hochfrequenz/fristenkalender/config"
	"github.com/hochfrequenz/fristenkalender/core/notify"
	"github.com/hochfrequenz/fristenkalender/infra/mqtt"
	"github.com/hochfrequenz/fristenkalender/test/util"
)

func TestReminderPublishWithMQTTContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed")
	}
	ctx := context.Background()

	broker, cleanup, err := util.StartMosquitto(ctx)
	if err != nil {
		t.Skipf("mosquitto not available: %v", err)
	}
	defer cleanup()

	received := make(chan notify.Reminder, 16)
	sub := paho.NewClient(paho.NewClientOptions().AddBroker(broker).SetClientID("reminder-sub"))
	tok := sub.Connect()
	tok.Wait()
	require.NoError(t, tok.Error())
	defer sub.Disconnect(100)
	tok = sub.Subscribe("fristenkalender/reminders/#", 1, func(_ paho.Client, m paho.Message) {
		var r notify.Reminder
		if err := json.Unmarshal(m.Payload(), &r); err == nil {
			received <- r
		}
	})
	tok.Wait()
	require.NoError(t, tok.Error())

	cfg := config.Default()
	cfg.MQTT.Broker = broker
	cfg.MQTT.QoS = 1
	cfg.Notify.HorizonDays = 3
	require.NoError(t, cfg.Validate())

	svc, err := app.New(cfg)
	require.NoError(t, err)
	defer svc.Close()

	pub, err := mqtt.NewPahoPublisher(cfg.MQTT)
	require.NoError(t, err)
	defer pub.Disconnect()

	n, err := svc.Notifier(pub)
	require.NoError(t, err)
	sent, err := n.Run(ctx, time.Date(2023, time.November, 27, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Greater(t, sent, 0)

	select {
	case r := <-received:
		assert.Equal(t, "2023-11-27", r.Date)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, 0, r.DaysLeft)
	case <-time.After(5 * time.Second):
		t.Fatal("no reminder received")
	}
}
