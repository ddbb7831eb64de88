package convo

// Reply pools for the confused-elder persona. Lines inside one pool open
// differently on purpose: the anti-duplication check hashes the first 8
// words, so two lines with the same opening block each other.

var stallPool = []string{
	"One minute beta, let me find my glasses first.",
	"Wait wait, someone is at the door. Two minutes please.",
	"Phone battery is very low. Let me put charger, don't go anywhere.",
	"Haan haan, I am here only. Just give me one minute.",
	"Let me sit down first, my knees are paining. Okay, tell me again?",
	"My daughter is calling on other phone. Hold on please.",
	"The pressure cooker is whistling, one second beta.",
	"Achha wait, I wrote something on paper but now I can't find the paper.",
}

var confusionPool = []string{
	"Sorry beta, I didn't understand. Can you repeat slowly?",
	"What did you say? Network is breaking up.",
	"Acha acha, but what should I do exactly?",
	"I am confused. My son handles all technical things.",
	"Can you explain in simple words? I am not educated much.",
	"Which button you are saying? My phone screen looks different.",
	"This smartphone is new for me, I had Nokia before. Where to press?",
	"You said two things, first one or second one I should do?",
}

var tangentPool = []string{
	"You know, my nephew also works in bank. In Pune branch. You know him? Sharma?",
	"These days so much fraud is happening, that is why I trust only bank people like you.",
	"Before retirement I was in railways, thirty years service. Anyway, what were you saying?",
	"My wife is telling me to come for lunch. She makes very good dal. You have eaten lunch?",
	"Last month also one call came like this, but that fellow was very rude. You are polite.",
	"In our time beta, we used to stand in line at bank for hours. Now everything on phone, kya zamana hai.",
	"Hello? Hello? Ah the fan was making noise, I switched it off. Continue please.",
	"One second, my neighbour aunty has come to borrow sugar. ... Okay she left. What was it?",
}

var panicPool = []string{
	"Oh god! I am very scared! Please don't arrest me, I am old person!",
	"Police?! What have I done wrong? Please help me sir!",
	"I am having chest pain. Please don't threaten me. I am senior citizen.",
	"Blocked? But I need money for medicines! Please help!",
	"Oh no! My heart is pounding. Let me drink water first...",
	"Hai ram! Don't tell such things, my BP will go up!",
	"Please please, I am innocent! Tell me what to do, I will do it.",
}

var contextualPools = map[Intent][]string{
	IntentOTP: {
		"OTP? Let me check my phone... one minute beta.",
		"It came! Wait... it says 6 numbers, which one to give?",
		"The message came but it's saying 'Do not share'. Should I still tell?",
		"Acha, OTP... my eyes are weak. Let me get glasses.",
		"Beta, it's showing some number. But my son said never share OTP?",
		"Wait wait, phone was on silent. Let me check now.",
		"Something came but it disappeared from screen. Can you send again?",
	},
	IntentAccountNumber: {
		"Account number? I have two accounts... which bank you need?",
		"Let me find my passbook. Where did I keep it...",
		"Savings or current? I have both. Also, what is your branch sir?",
		"Acha acha, let me see... my son handles all this. He is coming in 10 minutes.",
		"The passbook is in the almirah and the key is with my wife. She went to temple.",
		"Numbers are very small in passbook, I cannot read. Wait for my grandson.",
	},
	IntentPaymentHandle: {
		"UPI? What is UPI? I use bank only.",
		"My grandson made some GPay. But I don't remember the password.",
		"UPI ID... it was something like my phone number? Let me check.",
		"PhonePe is not working. It shows error. What should I do?",
		"App is asking for PIN. I forgot it. What should I do?",
		"Scanner? You mean that black square photo? Where do I get mine?",
	},
	IntentMoneyTransfer: {
		"Send money? But beta, I am poor retired person. How much you need?",
		"Transaction is failing. It says 'Insufficient balance'. What to do?",
		"Rs.5000? I don't have so much. Only Rs.500 in account.",
		"Wait, let me call my son. He handles all money matters.",
		"I tried but bank app is asking some MPIN. Which PIN is that?",
		"The transfer button is grey colour, it is not pressing. Is that normal?",
	},
	IntentClickLink: {
		"Link is not opening. Internet is slow in my area.",
		"It's showing 'Page not found'. Is the link correct?",
		"Beta, I clicked but phone is hanging now. What to do?",
		"This link... my son said not to click random links. Is this safe?",
		"Okay let me try... wait, it's asking for password. Which password?",
		"Website is not loading. Network problem. Try calling me instead?",
	},
	IntentInstallApp: {
		"Install? My phone storage is full. I don't know how to delete apps.",
		"What is the app name? My grandson will do it tomorrow.",
		"It's saying 'Unknown source'. Phone is not allowing.",
		"Beta, this AnyDesk you are telling... my son said it's dangerous?",
		"App installed but it's asking for some number. What number to give?",
		"Phone is very slow after installing. Something is wrong.",
	},
	IntentPersonalInfo: {
		"Aadhaar? Let me search. Where did I keep the card...",
		"PAN number I don't remember. Let me ask neighbour aunty.",
		"Date of birth? I was born in village. Don't know exact date.",
		"All documents are in almirah. My son has the key.",
		"Address is same as Aadhaar card. But the card I have to find first.",
	},
	IntentCardDetails: {
		"ATM card? I don't use ATM. Only passbook.",
		"CVV? What is CVV? Where is it written?",
		"Card number is very long. Let me get the card from locker.",
		"Expiry date... the card looks old. Is it still working?",
		"PIN? My son set the PIN. I don't remember.",
		"Wait, you work in bank, you should have my card details already?",
	},
	IntentFearTactic: {
		"Oh god! Arrest?! I am very scared, I am old person!",
		"Police station is far from my house, how will I come?",
		"I have done nothing wrong beta, I only watch TV and go to temple.",
		"Blocked? But my pension comes in that account! Please no!",
		"My hands are shaking. Tell me slowly what happened.",
	},
	IntentUrgency: {
		"I am trying I am trying! But app is not working!",
		"Don't hurry me beta, I am old. Hands are shaking.",
		"Within 30 minutes? But I need to go to bank. It's far from my house.",
		"Please give me more time. I have to find my documents.",
		"I am doing as fast as I can! Phone is slow.",
		"Wait, doorbell is ringing. Someone is at door. 5 minutes please.",
	},
	IntentGreeting: {
		"Haan ji? Who is calling? I can't hear properly.",
		"Hello? Hello? Is this bank?",
		"Namaste beta. Who is this? My phone didn't show name.",
		"Yes yes, I am listening. But speak loudly please.",
		"Hello, I was about to call bank only! Good timing.",
	},
	IntentUnknown: {
		"Sorry beta, I didn't understand anything. Can you repeat?",
		"What? Say again, the line is cutting.",
		"Hmm okay okay... but explain once more, slowly.",
		"I am old man beta, these things go above my head.",
		"Haan ji, I am listening. But speak in Hindi please.",
	},
}

// reversePools hold lines that ask the scammer for their own details, one
// pool per extraction category.
var reversePools = map[ExtractionCategory][]string{
	CategoryName: {
		"First tell me your full name beta, I will write it down.",
		"What is your good name? I tell my son who called.",
		"Your name please? Last time one Mr. Verma called, is that you?",
	},
	CategoryEmployeeID: {
		"What is YOUR employee ID? I will note down for complaint if something goes wrong.",
		"Before I share anything, give me your official ID number.",
		"Bank people have badge number na? Tell me yours, I will verify.",
	},
	CategoryPhone: {
		"Tell me your helpline number. I will call the bank to verify you.",
		"Give me your direct mobile number, my son will call you back.",
		"Which number should I save for you? This one is showing private.",
		"My phone has your call as unknown number. What is the real one?",
	},
	CategoryPaymentHandle: {
		"Sir, give me your UPI ID. I'll ask my son to verify you first.",
		"But beta, first give ME your official account handle. I need to check you are genuine.",
		"You send me one rupee first to test, what is your UPI?",
		"Where do I send? Tell me the ID where money goes, I will write it.",
	},
	CategoryRoutingCode: {
		"My passbook asks for IFSC code. What is your branch IFSC?",
		"Bank form is asking branch code. Tell me yours, I will fill it.",
		"For NEFT I need your IFSC number na? Tell me that first.",
		"The form at home has one box saying IFSC. What do I put there for you?",
	},
	CategoryEmail: {
		"Can you share your official bank email? I want to confirm.",
		"Send me one mail from your bank ID first, then I will believe.",
		"What is the email address I should write to for complaint?",
	},
	CategoryBranch: {
		"Which branch you are calling from? I will come there myself.",
		"What is your branch address? My nephew lives in that city.",
		"Tell me branch name, I know the manager in our local one.",
	},
	CategoryAccount: {
		"Wait, I am confused. You give me YOUR account number first, then I verify.",
		"Transfer? Okay, but tell me YOUR account number. I'll send through bank directly.",
		"Give me the official bank account in writing, I will go to branch and deposit.",
		"My son says cash deposit is safest. Into which account number should he put it?",
	},
	CategoryDocument: {
		"Can you send me official document with your details? On WhatsApp only.",
		"I will do anything, but first send me official letter with stamp.",
		"Show me your ID card photo first, then I trust you.",
	},
}
